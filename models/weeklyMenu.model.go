package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeeklyMenu is the admin-curated recipe selection for the week starting WeekOf (YYYY-MM-DD).
type WeeklyMenu struct {
	gorm.Model
	WeekOf      string                    `gorm:"uniqueIndex;size:10;not null" json:"weekOf"`
	RecipeIDs   datatypes.JSONSlice[uint] `json:"recipeIds"`
	IsPublished bool                      `gorm:"index" json:"isPublished"`
	CreatedBy   *uint                     `json:"createdBy,omitempty"`
}
