package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name         string        `gorm:"not null" json:"name"`
	Phone        *string       `gorm:"uniqueIndex;type:varchar(15)" json:"phone"`
	Email        *string       `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string        `json:"-"`
	Bookmarks    pq.Int64Array `gorm:"type:integer[]" json:"bookmarks"`
	Reviews      []Review      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// PhoneString returns the phone number or "" for accounts created through
// Google sign-in, which carry only an email.
func (u *User) PhoneString() string {
	if u.Phone == nil {
		return ""
	}
	return *u.Phone
}
