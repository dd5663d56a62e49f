package store

import (
	"homecooked/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SavedRecipeIDs(db *gorm.DB, userID uint) ([]uint, error) {
	ids := []uint{}
	if err := db.Model(&models.SavedRecipe{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func SavedRecipes(db *gorm.DB, userID uint) ([]models.Recipe, error) {
	var saved []models.SavedRecipe
	if err := db.Preload("Recipe").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(saved))
	for _, s := range saved {
		if s.Recipe.ID != 0 {
			recipes = append(recipes, s.Recipe)
		}
	}
	return recipes, nil
}

func SaveRecipe(db *gorm.DB, userID, recipeID uint) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SavedRecipe{UserID: userID, RecipeID: recipeID}).Error
}

func UnsaveRecipe(db *gorm.DB, userID, recipeID uint) error {
	return db.Unscoped().
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.SavedRecipe{}).Error
}
