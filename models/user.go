package models

import (
	"gorm.io/gorm"
)

// User is an account record. Username doubles as the Twilio client
// identity for both chat and voice.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"uniqueIndex;not null" json:"phone"`
	// FCMToken keeps its unique index, but the column stays NULL until
	// a device registers, so users without a token never collide on it.
	FCMToken *string `gorm:"uniqueIndex" json:"-"`
}
