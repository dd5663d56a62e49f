package store

import (
	"homecooked/storefront"

	"gorm.io/gorm"
)

// LoadSession assembles the signed-in shopper's state from the database.
func LoadSession(db *gorm.DB, userID uint) (*storefront.Session, error) {
	profile, err := GetProfile(db, userID)
	if err != nil {
		return nil, err
	}
	b, err := LoadCart(db, userID)
	if err != nil {
		return nil, err
	}
	saved, err := SavedRecipeIDs(db, userID)
	if err != nil {
		return nil, err
	}

	s := storefront.NewSession()
	s.LoggedIn = true
	s.Box = b
	s.SavedIDs = saved
	s.Profile = storefront.FromProfile(*profile)
	return s, nil
}
