package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Producer struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name" yaml:"name"`
	Location  string `json:"location" yaml:"location"`
	Specialty string `json:"specialty" yaml:"specialty"`
	Story     string `json:"story" yaml:"story"`
	ImageURL  string `json:"imageUrl" yaml:"imageUrl"`
	IsActive  bool   `json:"isActive" yaml:"isActive"`
}

type JournalEntry struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title" yaml:"title"`
	Excerpt     string `json:"excerpt" yaml:"excerpt"`
	Content     string `json:"content" yaml:"content"`
	Category    string `json:"category" yaml:"category"`
	Date        string `gorm:"index" json:"date" yaml:"date"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	IsPublished bool   `json:"isPublished" yaml:"isPublished"`
}

// SubscriptionPlan is a display-only plan tier.
type SubscriptionPlan struct {
	gorm.Model
	Name         string                      `gorm:"not null" json:"name" yaml:"name"`
	People       int                         `json:"people" yaml:"people"`
	MealsPerWeek int                         `json:"mealsPerWeek" yaml:"mealsPerWeek"`
	Price        float64                     `json:"price" yaml:"price"`
	Features     datatypes.JSONSlice[string] `json:"features" yaml:"features"`
	IsActive     bool                        `json:"isActive" yaml:"isActive"`
}
