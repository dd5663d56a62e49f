package models

import (
	"time"

	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	UserID    uint      `gorm:"index" json:"userId"`
	Provider  string    `json:"provider"`
	IPAddress string    `json:"ipAddress"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
}
