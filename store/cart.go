package store

import (
	"errors"

	"homecooked/box"
	"homecooked/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadCart hydrates the user's persisted box with current recipe data.
func LoadCart(db *gorm.DB, userID uint) (*box.Box, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return box.New(), nil
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, line := range cart.Items {
		ids = append(ids, line.RecipeID)
	}
	catalog, err := Catalog(db, ids)
	if err != nil {
		return nil, err
	}
	return box.Hydrate(cart.Items, catalog), nil
}

// SaveCart writes the whole box in one upsert. Concurrent writers are
// last-write-wins.
func SaveCart(db *gorm.DB, userID uint, b *box.Box) error {
	cart := models.Cart{
		UserID: userID,
		Items:  datatypes.NewJSONSlice(b.Lines()),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&cart).Error
}
