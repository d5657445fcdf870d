package controllers

import (
	"cleverloo/constants"
	"cleverloo/dto"
	"cleverloo/middleware"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/validator"

	"github.com/gin-gonic/gin"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RestroomController struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func NewRestroomController(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) *RestroomController {
	return &RestroomController{DB: db, Redis: redisCli, Cloudinary: cld}
}

func (rc *RestroomController) currentRestroom(c *gin.Context) (models.Restroom, bool) {
	var restroom models.Restroom
	if err := rc.DB.First(&restroom, middleware.ActorID(c)).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return models.Restroom{}, false
	}
	return restroom, true
}

func profileResponse(restroom models.Restroom) dto.RestroomProfileResponse {
	pictures := []string(restroom.Pictures)
	if pictures == nil {
		pictures = []string{}
	}
	return dto.RestroomProfileResponse{
		ID:        restroom.ID,
		Name:      restroom.Name,
		Address:   restroom.Address,
		Phone:     restroom.Phone,
		Latitude:  restroom.Latitude,
		Longitude: restroom.Longitude,
		Type:      restroom.Type,
		Rating:    restroom.Rating,
		Pictures:  pictures,
		Gender:    restroom.Gender,
	}
}

// GetProfile handles GET /restroom/profile
func (rc *RestroomController) GetProfile(c *gin.Context) {
	restroom, ok := rc.currentRestroom(c)
	if !ok {
		return
	}

	response.OK(c, "Restroom profile retrieved successfully!", gin.H{
		"restroom": profileResponse(restroom),
	})
}

// UpdateProfile handles PUT /restroom/edit
func (rc *RestroomController) UpdateProfile(c *gin.Context) {
	var input dto.RestroomEditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Name, address, latitude, and longitude are required.")
		return
	}
	if err := validator.ValidateCoordinates(*input.Latitude, *input.Longitude); err != nil {
		response.FromError(c, err)
		return
	}

	restroom, ok := rc.currentRestroom(c)
	if !ok {
		return
	}

	restroom.Name = input.Name
	restroom.Address = input.Address
	restroom.Latitude = *input.Latitude
	restroom.Longitude = *input.Longitude
	if input.Phone != "" {
		restroom.Phone = input.Phone
	}
	if err := rc.DB.Save(&restroom).Error; err != nil {
		if isUniqueViolationErr(err) {
			response.Conflict(c, "Phone number is already in use by another restroom.")
			return
		}
		response.ServerError(c, "Internal server error while updating profile.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroom.ID)

	response.OK(c, "Restroom profile updated successfully!", gin.H{
		"restroom": profileResponse(restroom),
	})
}

// ChangePassword handles PUT /restroom/change-password
func (rc *RestroomController) ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Current password and new password are required.")
		return
	}

	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	restroom, ok := rc.currentRestroom(c)
	if !ok {
		return
	}

	if !services.CheckPassword(input.CurrentPassword, restroom.PasswordHash) {
		response.Unauthorized(c, "Current password is incorrect.")
		return
	}

	hash, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c, "Internal server error while changing password.")
		return
	}

	if err := rc.DB.Model(&restroom).Update("password_hash", hash).Error; err != nil {
		response.ServerError(c, "Internal server error while changing password.")
		return
	}

	response.OK(c, "Password changed successfully!", nil)
}

// DeleteAccount handles DELETE /restroom/delete. Rooms and reviews cascade.
func (rc *RestroomController) DeleteAccount(c *gin.Context) {
	var input dto.DeleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Password confirmation is required to delete account.")
		return
	}

	restroom, ok := rc.currentRestroom(c)
	if !ok {
		return
	}

	if !services.CheckPassword(input.Password, restroom.PasswordHash) {
		response.Unauthorized(c, "Password is incorrect.")
		return
	}

	if err := rc.DB.Delete(&restroom).Error; err != nil {
		response.ServerError(c, "Internal server error while deleting account.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroom.ID)

	response.OK(c, "Restroom account deleted successfully!", nil)
}

// UpdateSettings handles PUT /restrooms/:id/settings. Omitted fields fall
// back to unisex/public, matching the dashboard's full-form submit.
func (rc *RestroomController) UpdateSettings(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.RestroomSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid settings payload.")
		return
	}

	if input.Gender != "" && !constants.IsValidGender(input.Gender) {
		response.BadRequest(c, "Invalid gender. Must be: male, female, or unisex.")
		return
	}
	if input.Type != "" && !constants.IsValidType(input.Type) {
		response.BadRequest(c, "Invalid type. Must be: public, paid, or private.")
		return
	}

	gender := input.Gender
	if gender == "" {
		gender = constants.GenderUnisex
	}
	restroomType := input.Type
	if restroomType == "" {
		restroomType = constants.TypePublic
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	restroom.Gender = gender
	restroom.Type = restroomType
	if err := rc.DB.Save(&restroom).Error; err != nil {
		response.ServerError(c, "Internal server error while updating settings.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.OK(c, "Restroom settings updated successfully!", gin.H{"restroom": profileResponse(restroom)})
}

// UpdateDescription handles PUT /restrooms/:id/description
func (rc *RestroomController) UpdateDescription(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.DescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid description payload.")
		return
	}

	if err := validator.ValidateFeatures(input.Features); err != nil {
		response.FromError(c, err)
		return
	}

	features := input.Features
	if features == nil {
		features = []string{}
	}
	description := models.Description{
		Features:              features,
		NearestTransportBus:   input.NearestTransportBus,
		NearestTransportMetro: input.NearestTransportMetro,
		NearestTransportTrain: input.NearestTransportTrain,
	}

	if err := rc.DB.Model(&models.Restroom{}).Where("id = ?", restroomID).
		Update("description", description).Error; err != nil {
		response.ServerError(c, "Internal server error while updating description.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.OK(c, "Description updated successfully!", gin.H{"description": description})
}

// GetDescription handles GET /restrooms/:id/description
func (rc *RestroomController) GetDescription(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	response.JSON(c, gin.H{"description": restroom.Description})
}

// AddPicture handles POST /restrooms/:id/pictures. The list never exceeds
// four entries.
func (rc *RestroomController) AddPicture(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.PictureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Image URL is required.")
		return
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	if len(restroom.Pictures) >= constants.MaxRestroomPictures {
		response.BadRequest(c, "Maximum 4 pictures allowed. Please delete some pictures first.")
		return
	}

	pictures := append(restroom.Pictures, input.ImageURL)
	if err := rc.DB.Model(&restroom).Update("pictures", pictures).Error; err != nil {
		response.ServerError(c, "Internal server error while uploading picture.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.OK(c, "Picture uploaded successfully!", gin.H{"pictures": []string(pictures)})
}

// GetPictures handles GET /restrooms/:id/pictures
func (rc *RestroomController) GetPictures(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	pictures := []string(restroom.Pictures)
	if pictures == nil {
		pictures = []string{}
	}
	response.JSON(c, gin.H{"pictures": pictures})
}

// DeletePicture handles DELETE /restrooms/:id/pictures
func (rc *RestroomController) DeletePicture(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.PictureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Image URL is required.")
		return
	}

	var restroom models.Restroom
	if err := rc.DB.First(&restroom, restroomID).Error; err != nil {
		response.NotFound(c, "Restroom not found.")
		return
	}

	updated := make(pq.StringArray, 0, len(restroom.Pictures))
	for _, url := range restroom.Pictures {
		if url != input.ImageURL {
			updated = append(updated, url)
		}
	}
	if len(updated) == len(restroom.Pictures) {
		response.NotFound(c, "Picture not found.")
		return
	}

	if err := rc.DB.Model(&restroom).Update("pictures", updated).Error; err != nil {
		response.ServerError(c, "Internal server error while deleting picture.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.OK(c, "Picture deleted successfully!", gin.H{"pictures": []string(updated)})
}

// UploadImage handles POST /img/upload: pushes a multipart file to the
// hosting service and returns the public URL.
func (rc *RestroomController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided.")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Failed to open file.")
		return
	}
	defer src.Close()

	url, err := services.UploadImage(c.Request.Context(), rc.Cloudinary, src, "uploads")
	if err != nil {
		response.ServerError(c, "Upload failed.")
		return
	}

	response.OK(c, "Upload successful.", gin.H{"url": url})
}
