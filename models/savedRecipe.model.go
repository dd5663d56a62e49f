package models

import "gorm.io/gorm"

type SavedRecipe struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex:idx_saved_user_recipe;not null" json:"userId"`
	RecipeID uint   `gorm:"uniqueIndex:idx_saved_user_recipe;not null" json:"recipeId"`
	Recipe   Recipe `json:"recipe"`
}
