package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `json:"-"`
	Provider            string     `gorm:"default:'email'" json:"provider"`
	Role                string     `gorm:"default:'USER'" json:"role"`        // USER, ADMIN
	LastLogin           *time.Time `json:"lastLogin"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-"`
}
