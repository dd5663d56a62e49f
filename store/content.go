package store

import (
	"homecooked/models"

	"gorm.io/gorm"
)

func PublishedWeeklyMenus(db *gorm.DB) ([]models.WeeklyMenu, error) {
	var menus []models.WeeklyMenu
	if err := db.Where("is_published = ?", true).Order("week_of DESC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func ActiveProducers(db *gorm.DB) ([]models.Producer, error) {
	var producers []models.Producer
	if err := db.Where("is_active = ?", true).Order("id").Find(&producers).Error; err != nil {
		return nil, err
	}
	return producers, nil
}

func PublishedJournal(db *gorm.DB) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := db.Where("is_published = ?", true).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func ActivePlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := db.Where("is_active = ?", true).Order("people").Order("meals_per_week").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
