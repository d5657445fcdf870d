package controllers

import (
	"strconv"

	"cleverloo/dto"
	"cleverloo/middleware"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) *UserController {
	return &UserController{DB: db, Redis: redisCli}
}

func (uc *UserController) currentUser(c *gin.Context) (models.User, bool) {
	var user models.User
	if err := uc.DB.First(&user, middleware.ActorID(c)).Error; err != nil {
		response.NotFound(c, "User not found.")
		return models.User{}, false
	}
	return user, true
}

// GetProfile handles GET /user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	response.OK(c, "User profile retrieved successfully!", gin.H{
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.PhoneString(),
		},
	})
}

// GetProfileDetails handles GET /user/profile/details, the flat shape the
// dashboard consumes.
func (uc *UserController) GetProfileDetails(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	response.JSON(c, dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.PhoneString(),
	})
}

// UpdateProfile handles PUT /user/edit
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input dto.UserEditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Name and phone number are required.")
		return
	}

	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	user.Name = input.Name
	user.Phone = &input.Phone
	if err := uc.DB.Save(&user).Error; err != nil {
		if isUniqueViolationErr(err) {
			response.Conflict(c, "Phone number is already in use by another user.")
			return
		}
		response.ServerError(c, "Internal server error while updating profile.")
		return
	}

	response.OK(c, "Profile updated successfully!", gin.H{
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.PhoneString(),
		},
	})
}

// ChangePassword handles PUT /user/change-password
func (uc *UserController) ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Current password and new password are required.")
		return
	}

	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	if !services.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		response.Unauthorized(c, "Current password is incorrect.")
		return
	}

	hash, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c, "Internal server error while changing password.")
		return
	}

	if err := uc.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		response.ServerError(c, "Internal server error while changing password.")
		return
	}

	response.OK(c, "Password changed successfully!", nil)
}

// DeleteAccount handles DELETE /user/delete. Deletion is permanent and
// cascades the user's reviews through the store's referential rules.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	var input dto.DeleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Password confirmation is required to delete account.")
		return
	}

	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	if !services.CheckPassword(input.Password, user.PasswordHash) {
		response.Unauthorized(c, "Password is incorrect.")
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		response.ServerError(c, "Internal server error while deleting account.")
		return
	}

	response.OK(c, "User account deleted successfully!", nil)
}

// GetBookmarks handles GET /user/bookmarks
func (uc *UserController) GetBookmarks(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	response.JSON(c, gin.H{"bookmarks": bookmarkIDs(user)})
}

// GetBookmarkDetails handles GET /user/bookmarks/details
func (uc *UserController) GetBookmarkDetails(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	ids := bookmarkIDs(user)
	if len(ids) == 0 {
		response.JSON(c, gin.H{"bookmarks": []dto.BookmarkedRestroom{}})
		return
	}

	var restrooms []models.Restroom
	if err := uc.DB.Where("id IN ?", ids).Order("name").Find(&restrooms).Error; err != nil {
		response.ServerError(c, "Internal server error while fetching bookmarked washrooms.")
		return
	}

	bookmarked := make([]dto.BookmarkedRestroom, 0, len(restrooms))
	for _, restroom := range restrooms {
		var totalReviews int64
		if err := uc.DB.Model(&models.Review{}).Where("restroom_id = ?", restroom.ID).Count(&totalReviews).Error; err != nil {
			response.ServerError(c, "Internal server error while fetching bookmarked washrooms.")
			return
		}
		rooms, err := services.FetchRooms(uc.DB, restroom.ID)
		if err != nil {
			response.ServerError(c, "Internal server error while fetching bookmarked washrooms.")
			return
		}

		pictures := []string(restroom.Pictures)
		if pictures == nil {
			pictures = []string{}
		}
		bookmarked = append(bookmarked, dto.BookmarkedRestroom{
			ID:            restroom.ID,
			Name:          restroom.Name,
			Address:       restroom.Address,
			Latitude:      restroom.Latitude,
			Longitude:     restroom.Longitude,
			Type:          restroom.Type,
			Gender:        restroom.Gender,
			Rating:        restroom.Rating,
			Pictures:      pictures,
			CurrentStatus: services.CurrentStatus(rooms),
			TotalReviews:  totalReviews,
		})
	}

	response.JSON(c, gin.H{"bookmarks": bookmarked})
}

// ToggleBookmark handles POST /user/bookmarks
func (uc *UserController) ToggleBookmark(c *gin.Context) {
	var input dto.BookmarkToggleInput
	if err := c.ShouldBindJSON(&input); err != nil || *input.RestroomID <= 0 {
		response.BadRequest(c, "Invalid restroom ID provided.")
		return
	}
	restroomID := *input.RestroomID

	var count int64
	if err := uc.DB.Model(&models.Restroom{}).Where("id = ?", restroomID).Count(&count).Error; err != nil {
		response.ServerError(c, "Internal server error while updating bookmark.")
		return
	}
	if count == 0 {
		response.NotFound(c, "Restroom not found.")
		return
	}

	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	next, action := services.ToggleBookmark(user.Bookmarks, restroomID)
	if err := uc.DB.Model(&user).Update("bookmarks", next).Error; err != nil {
		response.ServerError(c, "Internal server error while updating bookmark.")
		return
	}

	response.OK(c, "Bookmark "+action+" successfully.", gin.H{
		"bookmarks":    []int64(next),
		"action":       action,
		"isBookmarked": action == services.BookmarkAdded,
	})
}

// RemoveBookmark handles DELETE /user/bookmarks/:restroomId
func (uc *UserController) RemoveBookmark(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomId"), 10, 64)
	if err != nil || restroomID <= 0 {
		response.BadRequest(c, "Invalid restroom ID provided.")
		return
	}

	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	next, removed := services.RemoveBookmark(user.Bookmarks, restroomID)
	if !removed {
		response.NotFound(c, "Bookmark not found.")
		return
	}

	if err := uc.DB.Model(&user).Update("bookmarks", next).Error; err != nil {
		response.ServerError(c, "Internal server error while removing bookmark.")
		return
	}

	response.OK(c, "Bookmark removed successfully.", gin.H{"bookmarks": []int64(next)})
}

// ClearBookmarks handles DELETE /user/bookmarks
func (uc *UserController) ClearBookmarks(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	if err := uc.DB.Model(&user).Update("bookmarks", pqEmptyInt64Array()).Error; err != nil {
		response.ServerError(c, "Internal server error while clearing bookmarks.")
		return
	}

	response.OK(c, "All bookmarks cleared successfully.", gin.H{"bookmarks": []int64{}})
}

func bookmarkIDs(user models.User) []int64 {
	if user.Bookmarks == nil {
		return []int64{}
	}
	return []int64(user.Bookmarks)
}
