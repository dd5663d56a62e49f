package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartLine is the persisted form of a box entry.
type CartLine struct {
	RecipeID uint `json:"recipeId"`
	Quantity int  `json:"quantity"`
}

// Cart stores one box per user.
type Cart struct {
	gorm.Model
	UserID uint                          `gorm:"uniqueIndex;not null" json:"userId"`
	Items  datatypes.JSONSlice[CartLine] `json:"items"`
}
