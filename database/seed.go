package database

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"homecooked/logger"
	"homecooked/models"
	"homecooked/weeks"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedRecipe struct {
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	PrepTime    string               `yaml:"prepTime"`
	Servings    int                  `yaml:"servings"`
	Calories    int                  `yaml:"calories"`
	Price       float64              `yaml:"price"`
	ImageURL    string               `yaml:"imageUrl"`
	Category    string               `yaml:"category"`
	SkillLevel  string               `yaml:"skillLevel"`
	Nutrition   models.Nutrition     `yaml:"nutrition"`
	Ingredients []models.Ingredient  `yaml:"ingredients"`
	Steps       []models.CookingStep `yaml:"steps"`
}

type seedFile struct {
	Recipes   []seedRecipe              `yaml:"recipes"`
	Producers []models.Producer         `yaml:"producers"`
	Journal   []models.JournalEntry     `yaml:"journal"`
	Plans     []models.SubscriptionPlan `yaml:"plans"`
}

func loadSeed() (*seedFile, error) {
	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("decode seed.yaml: %w", err)
	}
	return &seed, nil
}

func (r seedRecipe) toModel() models.Recipe {
	return models.Recipe{
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		Servings:    r.Servings,
		Calories:    r.Calories,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		SkillLevel:  r.SkillLevel,
		Ingredients: datatypes.NewJSONSlice(r.Ingredients),
		Steps:       datatypes.NewJSONSlice(r.Steps),
		Nutrition:   datatypes.NewJSONType(r.Nutrition),
		IsActive:    true,
	}
}

// SeedDemoData fills empty catalog tables with the demo storefront content.
// Tables that already hold rows are left alone.
func SeedDemoData(db *gorm.DB) error {
	seed, err := loadSeed()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Recipe{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seed.Recipes) > 0 {
			recipes := make([]models.Recipe, 0, len(seed.Recipes))
			for _, r := range seed.Recipes {
				recipes = append(recipes, r.toModel())
			}
			if err := tx.Create(&recipes).Error; err != nil {
				return err
			}

			ids := make([]uint, 0, 4)
			for i := 0; i < len(recipes) && i < 4; i++ {
				ids = append(ids, recipes[i].ID)
			}
			menu := models.WeeklyMenu{
				WeekOf:      weeks.Of(time.Now()),
				RecipeIDs:   datatypes.NewJSONSlice(ids),
				IsPublished: true,
			}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			logger.Log.Infof("Seeded %d recipes", len(recipes))
		}

		if err := tx.Model(&models.Producer{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seed.Producers) > 0 {
			if err := tx.Create(&seed.Producers).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.JournalEntry{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seed.Journal) > 0 {
			if err := tx.Create(&seed.Journal).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.SubscriptionPlan{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seed.Plans) > 0 {
			if err := tx.Create(&seed.Plans).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureAdmin creates the back-office account, or promotes an existing user
// with that email to ADMIN.
func EnsureAdmin(db *gorm.DB, email, password string, saltRound int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.Role == models.RoleAdmin {
			return nil
		}
		return db.Model(&user).Update("role", models.RoleAdmin).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), saltRound)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Provider: models.ProviderEmail,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
