package controllers

import (
	"strconv"
	"time"
	_ "time/tzdata"

	"cleverloo/dto"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SearchController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSearchController(db *gorm.DB, redisCli *redis.Client) *SearchController {
	return &SearchController{DB: db, Redis: redisCli}
}

func istNow() string {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(time.RFC3339)
}

// Root handles GET /
func Root(c *gin.Context) {
	response.JSON(c, gin.H{
		"message":   "Cleverloo API is running.",
		"timestamp": istNow(),
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	response.JSON(c, gin.H{
		"status":    "ok",
		"timestamp": istNow(),
	})
}

// Search handles GET /restrooms/search. Results come back sorted by
// distance from the caller; an empty result set includes name suggestions.
func (sc *SearchController) Search(c *gin.Context) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if latStr == "" || lonStr == "" {
		response.BadRequest(c, "User latitude and longitude are required.")
		return
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(c, "User latitude and longitude are required.")
		return
	}

	filters := dto.SearchFilters{
		Query:    c.Query("query"),
		Gender:   c.Query("gender"),
		PaidOnly: c.Query("paid") == "true",
	}

	results, err := services.SearchRestrooms(sc.DB, lat, lon, filters)
	if err != nil {
		response.ServerError(c, "Internal server error while searching restrooms.")
		return
	}

	if len(results) == 0 && filters.Query != "" {
		var names []string
		if err := sc.DB.Model(&models.Restroom{}).Pluck("name", &names).Error; err == nil {
			suggestions := services.SuggestNames(names, filters.Query, 3)
			response.JSON(c, gin.H{
				"restrooms":   []dto.SearchResult{},
				"suggestions": suggestions,
			})
			return
		}
	}

	response.JSON(c, gin.H{"restrooms": results})
}

// GetAllRestrooms handles GET /restrooms
func (sc *SearchController) GetAllRestrooms(c *gin.Context) {
	var restrooms []models.Restroom
	if err := sc.DB.Find(&restrooms).Error; err != nil {
		response.ServerError(c, "Internal server error while fetching restrooms.")
		return
	}

	response.JSON(c, gin.H{"restrooms": restrooms})
}

// GetRestroomByID handles GET /restrooms/:id
func (sc *SearchController) GetRestroomByID(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	var restroom models.Restroom
	if err := sc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	response.JSON(c, gin.H{"restroom": restroom})
}

// GetRestroomDetails handles GET /restrooms/:id/details. The row, rooms,
// and reviews are cached; the live status is recomputed on every hit so a
// status flip never serves stale.
func (sc *SearchController) GetRestroomDetails(c *gin.Context) {
	restroomID, ok := parseRestroomID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := services.CacheKeyRestroomDetails + c.Param("id")

	var cached dto.RestroomDetails
	if err := services.GetFromRedis(ctx, sc.Redis, cacheKey, &cached); err == nil && cached.ID != 0 {
		cached.CurrentStatus = services.CurrentStatus(cached.Rooms)
		response.JSON(c, gin.H{"restroom": cached})
		return
	}

	var restroom models.Restroom
	if err := sc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	rooms, err := services.FetchRooms(sc.DB, restroomID)
	if err != nil {
		response.ServerError(c, "Internal server error while fetching restroom details.")
		return
	}
	reviews, err := services.FetchReviews(sc.DB, restroomID)
	if err != nil {
		response.ServerError(c, "Internal server error while fetching restroom details.")
		return
	}

	details := services.BuildDetails(restroom, rooms, reviews)

	if err := services.SetToRedis(ctx, sc.Redis, cacheKey, details, services.DefaultCacheTTL); err != nil {
		utils.LogError("failed to cache restroom details: %v", err)
	}

	response.JSON(c, gin.H{"restroom": details})
}
