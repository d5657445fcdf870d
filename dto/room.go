package dto

type RoomInput struct {
	RoomName string `json:"room_name" binding:"required"`
}

type RoomStatusInput struct {
	QueueStatus string `json:"queue_status" binding:"required"`
}
