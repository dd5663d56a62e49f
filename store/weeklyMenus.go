package store

import (
	"homecooked/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func WeeklyMenus(db *gorm.DB) ([]models.WeeklyMenu, error) {
	var menus []models.WeeklyMenu
	if err := db.Order("week_of DESC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func GetWeeklyMenu(db *gorm.DB, weekOf string) (*models.WeeklyMenu, error) {
	var menu models.WeeklyMenu
	if err := db.Where("week_of = ?", weekOf).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// UpsertWeeklyMenu replaces the recipe selection of a week, creating the
// week when it does not exist yet.
func UpsertWeeklyMenu(db *gorm.DB, weekOf string, recipeIDs []uint, createdBy *uint) (*models.WeeklyMenu, error) {
	if recipeIDs == nil {
		recipeIDs = []uint{}
	}
	menu := models.WeeklyMenu{
		WeekOf:    weekOf,
		RecipeIDs: datatypes.NewJSONSlice(recipeIDs),
		CreatedBy: createdBy,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_of"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_ids", "updated_at"}),
	}).Create(&menu).Error
	if err != nil {
		return nil, err
	}
	return GetWeeklyMenu(db, weekOf)
}
