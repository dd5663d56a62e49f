package store

import (
	"errors"

	"homecooked/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewProfile returns the starting profile for a user.
func NewProfile(userID uint) models.Profile {
	return models.Profile{
		UserID:             userID,
		People:             2,
		RecipesPerWeek:     3,
		SkillLevel:         models.SkillAll,
		Allergies:          datatypes.JSONSlice[string]{},
		Preferences:        datatypes.JSONSlice[string]{},
		PausedWeeks:        datatypes.JSONSlice[string]{},
		Status:             models.AccountActive,
		SubscriptionStatus: models.SubscriptionNone,
	}
}

// GetProfile loads the user's profile, creating the default one on first use.
func GetProfile(db *gorm.DB, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = NewProfile(userID)
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func SaveProfile(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}
