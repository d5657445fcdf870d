package dto

import (
	"time"

	"cleverloo/models"
)

type ReviewInput struct {
	Rating   int      `json:"rating" binding:"required"`
	Comment  *string  `json:"comment"`
	Pictures []string `json:"pictures"`
}

type ReviewResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	RestroomID uint      `json:"restroom_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	Pictures   []string  `json:"pictures"`
	UserName   string    `json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewReviewResponse flattens a review and its preloaded author.
func NewReviewResponse(review models.Review) ReviewResponse {
	pictures := []string(review.Pictures)
	if pictures == nil {
		pictures = []string{}
	}
	return ReviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		RestroomID: review.RestroomID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Pictures:   pictures,
		UserName:   review.User.Name,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
