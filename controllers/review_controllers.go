package controllers

import (
	"cleverloo/constants"
	"cleverloo/dto"
	"cleverloo/middleware"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/utils"
	"cleverloo/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewReviewController(db *gorm.DB, redisCli *redis.Client) *ReviewController {
	return &ReviewController{DB: db, Redis: redisCli}
}

// CreateReview handles POST /restrooms/:id/reviews
func (rc *ReviewController) CreateReview(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	var input dto.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Rating is required.")
		return
	}
	if err := validator.ValidateRating(input.Rating); err != nil {
		response.FromError(c, err)
		return
	}
	if len(input.Pictures) > constants.MaxReviewPictures {
		response.BadRequest(c, "You can only upload 1 picture per review.")
		return
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	review := models.Review{
		UserID:     middleware.ActorID(c),
		RestroomID: restroomID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Pictures:   pq.StringArray(input.Pictures),
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		response.ServerError(c, "Internal server error while submitting review.")
		return
	}

	if err := services.UpdateRestroomRating(rc.DB, restroomID); err != nil {
		utils.LogError("failed to update restroom rating: %v", err)
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	// Reload with the author for the response; on failure the review still
	// went in, so respond anyway with an empty author name.
	if err := rc.DB.Preload("User").First(&review, review.ID).Error; err != nil {
		utils.LogError("failed to reload review %d with author: %v", review.ID, err)
	}

	response.Created(c, "Review submitted successfully!", gin.H{
		"review": dto.NewReviewResponse(review),
	})
}

// GetReviews handles GET /restrooms/:id/reviews, newest first. Served from
// cache when a fresh copy exists.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := services.CacheKeyReviews + c.Param("id")

	var cached []dto.ReviewResponse
	if err := services.GetFromRedis(ctx, rc.Redis, cacheKey, &cached); err == nil && cached != nil {
		response.JSON(c, gin.H{"reviews": cached})
		return
	}

	reviews, err := services.FetchReviews(rc.DB, restroomID)
	if err != nil {
		response.ServerError(c, "Internal server error while fetching reviews.")
		return
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, dto.NewReviewResponse(review))
	}

	if err := services.SetToRedis(ctx, rc.Redis, cacheKey, result, services.DefaultCacheTTL); err != nil {
		utils.LogError("failed to cache reviews: %v", err)
	}

	response.JSON(c, gin.H{"reviews": result})
}

// GetUserReviewStatus handles GET /restrooms/:id/user-review-status for
// the signed-in user.
func (rc *ReviewController) GetUserReviewStatus(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	var count int64
	err := rc.DB.Model(&models.Review{}).
		Where("restroom_id = ? AND user_id = ?", restroomID, middleware.ActorID(c)).
		Count(&count).Error
	if err != nil {
		response.ServerError(c, "Internal server error while checking review status.")
		return
	}

	response.JSON(c, gin.H{
		"hasReviewed": count > 0,
		"reviewCount": count,
	})
}

// GetUserReviews handles GET /restrooms/:id/user-reviews: the signed-in
// user's reviews of one facility.
func (rc *ReviewController) GetUserReviews(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	err := rc.DB.Preload("User").
		Where("restroom_id = ? AND user_id = ?", restroomID, middleware.ActorID(c)).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		response.ServerError(c, "Internal server error while fetching reviews.")
		return
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, dto.NewReviewResponse(review))
	}

	response.JSON(c, gin.H{
		"reviews": result,
		"count":   len(result),
	})
}

// GetAdminReviews handles GET /restrooms/:id/reviews/admin, restricted to
// the owning restroom account.
func (rc *ReviewController) GetAdminReviews(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	reviews, err := services.FetchReviews(rc.DB, restroomID)
	if err != nil {
		response.ServerError(c, "Internal server error while fetching reviews.")
		return
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, dto.NewReviewResponse(review))
	}

	response.JSON(c, gin.H{
		"reviews": result,
		"count":   len(result),
	})
}
