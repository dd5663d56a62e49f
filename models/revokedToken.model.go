package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken records a signed-out JWT until its natural expiry.
type RevokedToken struct {
	gorm.Model
	TokenID   string    `gorm:"uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
}
