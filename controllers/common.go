package controllers

import (
	"context"
	goerrors "errors"
	"strconv"

	"cleverloo/middleware"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func isUniqueViolationErr(err error) bool {
	var pqErr *pq.Error
	if goerrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return goerrors.Is(err, gorm.ErrDuplicatedKey)
}

func pqEmptyInt64Array() pq.Int64Array {
	return pq.Int64Array{}
}

// requireOwnership parses the :id path segment and checks it against the
// authenticated restroom identity. Every mutating facility route goes
// through this.
func requireOwnership(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid restroom ID.")
		return 0, false
	}
	if uint(id) != middleware.ActorID(c) {
		response.Forbidden(c, "You can only modify your own restroom.")
		return 0, false
	}
	return uint(id), true
}

// parseRestroomID parses the :id path segment without an ownership check.
func parseRestroomID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid restroom ID.")
		return 0, false
	}
	return uint(id), true
}

// invalidateRestroomCache drops the cached enriched reads for a facility.
// Cache failures are logged, never surfaced.
func invalidateRestroomCache(ctx context.Context, rdb *redis.Client, restroomID uint) {
	if rdb == nil {
		return
	}
	id := strconv.FormatUint(uint64(restroomID), 10)
	if err := services.DeleteFromRedis(ctx, rdb,
		services.CacheKeyRestroomDetails+id,
		services.CacheKeyReviews+id,
	); err != nil {
		utils.LogError("failed to invalidate cache for restroom %d: %v", restroomID, err)
	}
}
