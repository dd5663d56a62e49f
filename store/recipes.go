// Package store is the data-access layer for shopper-facing tables.
package store

import (
	"sort"
	"strings"

	"homecooked/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows catalog listings. Empty fields and "All" match everything.
type RecipeFilter struct {
	Category   string `query:"category"`
	SkillLevel string `query:"skillLevel"`
	Search     string `query:"search"`
}

func (f RecipeFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Category != "" && f.Category != "All" {
		q = q.Where("category = ?", f.Category)
	}
	if f.SkillLevel != "" && f.SkillLevel != models.SkillAll {
		q = q.Where("skill_level = ?", f.SkillLevel)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	return q
}

// ActiveRecipes lists recipes visible to shoppers, newest first.
func ActiveRecipes(db *gorm.DB, filter RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe
	q := filter.apply(db.Model(&models.Recipe{}).Where("is_active = ?", true))
	if err := q.Order("created_at DESC").Order("id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Recipes lists every recipe for the back office.
func Recipes(db *gorm.DB, filter RecipeFilter, page, limit int) ([]models.Recipe, int64, error) {
	var (
		recipes []models.Recipe
		total   int64
	)
	q := filter.apply(db.Model(&models.Recipe{}))
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func GetRecipe(db *gorm.DB, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Catalog loads the given recipes keyed by id. Inactive recipes are included
// so an existing box keeps showing what was added.
func Catalog(db *gorm.DB, ids []uint) (map[uint]models.Recipe, error) {
	catalog := make(map[uint]models.Recipe, len(ids))
	if len(ids) == 0 {
		return catalog, nil
	}
	var recipes []models.Recipe
	if err := db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	for _, r := range recipes {
		catalog[r.ID] = r
	}
	return catalog, nil
}

// Categories returns the menu tabs: "All", each distinct category of an
// active recipe, then "Saved".
func Categories(db *gorm.DB) ([]string, error) {
	var distinct []string
	if err := db.Model(&models.Recipe{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("category", &distinct).Error; err != nil {
		return nil, err
	}
	sort.Strings(distinct)

	out := []string{"All"}
	for _, c := range distinct {
		if c != "" {
			out = append(out, c)
		}
	}
	return append(out, "Saved"), nil
}
