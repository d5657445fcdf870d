package controllers

import (
	"strconv"
	"time"

	"cleverloo/constants"
	"cleverloo/dto"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) *RoomController {
	return &RoomController{DB: db, Redis: redisCli}
}

// CreateRoom handles POST /restrooms/:id/rooms. New rooms start vacant.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Room name is required.")
		return
	}

	room := models.Room{
		RestroomID:  restroomID,
		RoomName:    input.RoomName,
		QueueStatus: constants.QueueStatusVacant,
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		response.ServerError(c, "Internal server error while creating room.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.Created(c, "Room created successfully!", gin.H{"room": room})
}

// GetRooms handles GET /restrooms/:id/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var rooms []models.Room
	if err := rc.DB.Where("restroom_id = ?", restroomID).
		Order("created_at ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c, "Internal server error while fetching rooms.")
		return
	}

	response.JSON(c, gin.H{"rooms": rooms})
}

func (rc *RoomController) findRoom(c *gin.Context, restroomID uint) (models.Room, bool) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil || roomID == 0 {
		response.BadRequest(c, "Invalid room ID.")
		return models.Room{}, false
	}

	var room models.Room
	err = rc.DB.Where("room_id = ? AND restroom_id = ?", uint(roomID), restroomID).
		First(&room).Error
	if err != nil {
		response.NotFound(c, "Room not found or does not belong to this restroom.")
		return models.Room{}, false
	}
	return room, true
}

// UpdateRoom handles PUT /restrooms/:id/rooms/:roomId
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Room name is required.")
		return
	}

	room, ok := rc.findRoom(c, restroomID)
	if !ok {
		return
	}

	if err := rc.DB.Model(&room).Update("room_name", input.RoomName).Error; err != nil {
		response.ServerError(c, "Internal server error while updating room.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	room.RoomName = input.RoomName
	response.OK(c, "Room updated successfully!", gin.H{"room": room})
}

// DeleteRoom handles DELETE /restrooms/:id/rooms/:roomId
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	room, ok := rc.findRoom(c, restroomID)
	if !ok {
		return
	}

	if err := rc.DB.Delete(&room).Error; err != nil {
		response.ServerError(c, "Internal server error while deleting room.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	response.OK(c, "Room deleted successfully!", nil)
}

// UpdateRoomStatus handles PUT /restrooms/:id/rooms/:roomId/status.
// Switching to Cleaning stamps last_cleaned.
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	restroomID, ok := requireOwnership(c)
	if !ok {
		return
	}

	var input dto.RoomStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Queue status is required.")
		return
	}
	if err := validator.ValidateQueueStatus(input.QueueStatus); err != nil {
		response.FromError(c, err)
		return
	}

	room, ok := rc.findRoom(c, restroomID)
	if !ok {
		return
	}

	updates := map[string]interface{}{"queue_status": input.QueueStatus}
	if input.QueueStatus == constants.QueueStatusCleaning {
		now := time.Now()
		updates["last_cleaned"] = now
		room.LastCleaned = &now
	}

	if err := rc.DB.Model(&room).Updates(updates).Error; err != nil {
		response.ServerError(c, "Internal server error while updating room status.")
		return
	}

	invalidateRestroomCache(c.Request.Context(), rc.Redis, restroomID)

	room.QueueStatus = input.QueueStatus
	response.OK(c, "Room status updated successfully!", gin.H{"room": room})
}
