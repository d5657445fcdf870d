package middleware

import (
	"strings"

	"cleverloo/constants"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by AuthMiddleware
const (
	CtxActorID   = "actorID"
	CtxActorRole = "actorRole"
)

// AuthMiddleware verifies the bearer token and gates by role. With no roles
// given, any authenticated caller passes. The account row is checked to
// still exist, so tokens of deleted accounts fail as unauthenticated.
func AuthMiddleware(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if !accountExists(db, userInfo) {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				if userInfo.Role == constants.RoleRestroom {
					response.Forbidden(c, "Access denied. Users only.")
				} else {
					response.Forbidden(c, "Access denied. Restrooms only.")
				}
				c.Abort()
				return
			}
		}

		c.Set(CtxActorID, userInfo.ID)
		c.Set(CtxActorRole, userInfo.Role)
		c.Next()
	}
}

func accountExists(db *gorm.DB, userInfo services.UserInfo) bool {
	var count int64
	switch userInfo.Role {
	case constants.RoleUser:
		db.Model(&models.User{}).Where("id = ?", userInfo.ID).Count(&count)
	case constants.RoleRestroom:
		db.Model(&models.Restroom{}).Where("id = ?", userInfo.ID).Count(&count)
	default:
		return false
	}
	return count > 0
}

// ActorID returns the authenticated account id from the request context.
func ActorID(c *gin.Context) uint {
	id, _ := c.Get(CtxActorID)
	actorID, _ := id.(uint)
	return actorID
}

// ActorRole returns the authenticated role from the request context.
func ActorRole(c *gin.Context) string {
	role, _ := c.Get(CtxActorRole)
	actorRole, _ := role.(string)
	return actorRole
}
