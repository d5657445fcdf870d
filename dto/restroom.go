package dto

import (
	"time"

	"cleverloo/models"
)

type RestroomEditInput struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type RestroomSettingsInput struct {
	Gender string `json:"gender"`
	Type   string `json:"type"`
}

type DescriptionInput struct {
	Features              []string `json:"features"`
	NearestTransportBus   *string  `json:"nearest_transport_bus"`
	NearestTransportMetro *string  `json:"nearest_transport_metro"`
	NearestTransportTrain *string  `json:"nearest_transport_train"`
}

type PictureInput struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

type RestroomProfileResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Type      string   `json:"type"`
	Rating    float64  `json:"rating"`
	Pictures  []string `json:"pictures"`
	Gender    string   `json:"gender"`
}

// RestroomDetails is the enriched facility shape returned by the details and
// search endpoints: the row plus sub-resources and the derived status.
type RestroomDetails struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	Phone         string             `json:"phone"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Type          string             `json:"type"`
	Gender        string             `json:"gender"`
	Rating        float64            `json:"rating"`
	Pictures      []string           `json:"pictures"`
	Description   models.Description `json:"description"`
	CurrentStatus string             `json:"current_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Rooms         []models.Room      `json:"rooms"`
	Reviews       []ReviewResponse   `json:"reviews"`
}

// SearchResult is a RestroomDetails annotated with distance to the caller.
type SearchResult struct {
	RestroomDetails
	DistanceKm string `json:"distance_km"`
}

type BookmarkedRestroom struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Type          string   `json:"type"`
	Gender        string   `json:"gender"`
	Rating        float64  `json:"rating"`
	Pictures      []string `json:"pictures"`
	CurrentStatus string   `json:"current_status"`
	TotalReviews  int64    `json:"total_reviews"`
}
