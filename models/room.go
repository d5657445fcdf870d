package models

import "time"

type Room struct {
	RoomID      uint       `gorm:"primaryKey" json:"room_id"`
	RestroomID  uint       `gorm:"index;not null" json:"restroom_id"`
	RoomName    string     `gorm:"not null" json:"room_name"`
	QueueStatus string     `gorm:"default:Vacant" json:"queue_status"`
	LastCleaned *time.Time `json:"last_cleaned"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
