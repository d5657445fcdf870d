package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"cleverloo/constants"
	"cleverloo/dto"
	"cleverloo/errors"
	"cleverloo/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// coordinates in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FormatDistanceKm renders a distance with 2 decimal places.
func FormatDistanceKm(km float64) string {
	return fmt.Sprintf("%.2f", km)
}

// normalizeInput folds case and diacritics for substring matching.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// MatchesFilters applies the optional search predicates, AND-composed.
// The free-text query matches against name OR address.
func MatchesFilters(restroom models.Restroom, filters dto.SearchFilters) bool {
	if filters.Query != "" {
		q := normalizeInput(filters.Query)
		if !strings.Contains(normalizeInput(restroom.Name), q) &&
			!strings.Contains(normalizeInput(restroom.Address), q) {
			return false
		}
	}
	if filters.Gender != "" && restroom.Gender != filters.Gender {
		return false
	}
	if filters.PaidOnly && restroom.Type != constants.TypePaid {
		return false
	}
	return true
}

// BuildDetails assembles the enriched facility shape, deriving the current
// status from the rooms on every call.
func BuildDetails(restroom models.Restroom, rooms []models.Room, reviews []models.Review) dto.RestroomDetails {
	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, dto.NewReviewResponse(review))
	}
	pictures := []string(restroom.Pictures)
	if pictures == nil {
		pictures = []string{}
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return dto.RestroomDetails{
		ID:            restroom.ID,
		Name:          restroom.Name,
		Address:       restroom.Address,
		Phone:         restroom.Phone,
		Latitude:      restroom.Latitude,
		Longitude:     restroom.Longitude,
		Type:          restroom.Type,
		Gender:        restroom.Gender,
		Rating:        restroom.Rating,
		Pictures:      pictures,
		Description:   restroom.Description,
		CurrentStatus: CurrentStatus(rooms),
		CreatedAt:     restroom.CreatedAt,
		UpdatedAt:     restroom.UpdatedAt,
		Rooms:         rooms,
		Reviews:       reviewResponses,
	}
}

// FetchRooms loads a facility's rooms in stored order.
func FetchRooms(db *gorm.DB, restroomID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := db.Where("restroom_id = ?", restroomID).Order("created_at ASC").Find(&rooms).Error
	return rooms, err
}

// FetchReviews loads a facility's reviews with their authors, newest first.
func FetchReviews(db *gorm.DB, restroomID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("User").Where("restroom_id = ?", restroomID).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// SearchRestrooms runs the proximity search pipeline: filter the facility
// collection, enrich each candidate with rooms, reviews and distance to the
// caller, then rank ascending by distance. Any enrichment failure aborts the
// whole search; there are no partial results.
func SearchRestrooms(db *gorm.DB, userLat, userLon float64, filters dto.SearchFilters) ([]dto.SearchResult, error) {
	var restrooms []models.Restroom
	if err := db.Find(&restrooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Internal server error while fetching nearby restrooms.", err)
	}

	type scored struct {
		result   dto.SearchResult
		distance float64
	}

	candidates := make([]scored, 0, len(restrooms))
	for _, restroom := range restrooms {
		if !MatchesFilters(restroom, filters) {
			continue
		}

		rooms, err := FetchRooms(db, restroom.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Internal server error while fetching nearby restrooms.", err)
		}
		reviews, err := FetchReviews(db, restroom.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Internal server error while fetching nearby restrooms.", err)
		}

		distance := Haversine(userLat, userLon, restroom.Latitude, restroom.Longitude)
		candidates = append(candidates, scored{
			result: dto.SearchResult{
				RestroomDetails: BuildDetails(restroom, rooms, reviews),
				DistanceKm:      FormatDistanceKm(distance),
			},
			distance: distance,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	results := make([]dto.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, candidate.result)
	}
	return results, nil
}

// SuggestNames returns close facility-name matches for a query that matched
// nothing, most similar first.
func SuggestNames(names []string, query string, limit int) []string {
	if len(names) == 0 || query == "" {
		return []string{}
	}

	normalized := make([]string, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		n := normalizeInput(name)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = name
		normalized = append(normalized, n)
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	q := normalizeInput(query)

	suggestions := make([]string, 0, limit)
	for _, match := range cm.ClosestN(q, limit) {
		if match == "" {
			continue
		}
		if calculateSimilarity(q, match) < 0.4 {
			continue
		}
		suggestions = append(suggestions, seen[match])
	}
	return suggestions
}

// calculateSimilarity scores two strings in [0,1] by edit distance.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	longest := len([]rune(a))
	if len([]rune(b)) > longest {
		longest = len([]rune(b))
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}
