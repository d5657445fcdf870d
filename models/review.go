package models

import (
	"time"

	"github.com/lib/pq"
)

type Review struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	RestroomID uint           `gorm:"index;not null" json:"restroom_id"`
	Rating     int            `gorm:"not null" json:"rating"`
	Comment    *string        `json:"comment"`
	Pictures   pq.StringArray `gorm:"type:text[]" json:"pictures"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
}
