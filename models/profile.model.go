package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SkillAll = "All"

	AccountActive    = "Active"
	AccountPaused    = "Paused"
	AccountCancelled = "Cancelled"

	SubscriptionNone   = "none"
	SubscriptionActive = "active"
)

var AccountStatuses = []string{AccountActive, AccountPaused, AccountCancelled}

// Profile holds the household box configuration of a shopper.
type Profile struct {
	gorm.Model
	UserID                uint                        `gorm:"uniqueIndex;not null" json:"userId"`
	People                int                         `gorm:"default:2" json:"people"`
	RecipesPerWeek        int                         `gorm:"default:3" json:"recipesPerWeek"`
	SkillLevel            string                      `gorm:"default:'All'" json:"skillLevel"`
	Allergies             datatypes.JSONSlice[string] `json:"allergies"`
	Preferences           datatypes.JSONSlice[string] `json:"preferences"`
	PausedWeeks           datatypes.JSONSlice[string] `json:"pausedWeeks"`
	Onboarded             bool                        `json:"onboarded"`
	Status                string                      `gorm:"default:'Active'" json:"status"`
	SubscriptionStatus    string                      `gorm:"default:'none'" json:"subscriptionStatus"`
	SubscriptionCode      string                      `json:"subscriptionCode,omitempty"`
	CustomerCode          string                      `json:"customerCode,omitempty"`
	AuthorizationCode     string                      `json:"-"`
	SubscriptionReference string                      `gorm:"index" json:"subscriptionReference,omitempty"`
	SubscriptionStartedAt *time.Time                  `json:"subscriptionStartedAt,omitempty"`
}
