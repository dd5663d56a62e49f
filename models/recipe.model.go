package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CategoryModernBritish  = "Modern British"
	CategoryMediterranean  = "Mediterranean"
	CategoryAsianFusion    = "Asian Fusion"
	CategoryClassicComfort = "Classic Comfort"

	SkillEasy     = "Easy"
	SkillMedium   = "Medium"
	SkillAdvanced = "Advanced"
)

var (
	Categories  = []string{CategoryModernBritish, CategoryMediterranean, CategoryAsianFusion, CategoryClassicComfort}
	SkillLevels = []string{SkillEasy, SkillMedium, SkillAdvanced}
)

type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Amount   string `json:"amount" yaml:"amount"`
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

type CookingStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Tip         string `json:"tip,omitempty" yaml:"tip"`
}

type Nutrition struct {
	Carbs   string `json:"carbs" yaml:"carbs"`
	Protein string `json:"protein" yaml:"protein"`
	Fats    string `json:"fats" yaml:"fats"`
}

// Recipe is a purchasable meal kit. Price is the two-person baseline.
type Recipe struct {
	gorm.Model
	Title       string                           `gorm:"not null" json:"title"`
	Description string                           `json:"description"`
	PrepTime    string                           `json:"prepTime"`
	Servings    int                              `gorm:"default:2" json:"servings"`
	Calories    int                              `json:"calories"`
	Price       float64                          `json:"price"`
	ImageURL    string                           `json:"imageUrl"`
	Category    string                           `gorm:"index" json:"category"`
	SkillLevel  string                           `gorm:"index" json:"skillLevel"`
	Ingredients datatypes.JSONSlice[Ingredient]  `json:"ingredients"`
	Steps       datatypes.JSONSlice[CookingStep] `json:"steps"`
	Nutrition   datatypes.JSONType[Nutrition]    `json:"nutrition"`
	IsActive    bool                             `gorm:"index" json:"isActive"`
	CreatedBy   *uint                            `json:"createdBy,omitempty"`
}

func IsCategory(v string) bool {
	return contains(Categories, v)
}

func IsSkillLevel(v string) bool {
	return contains(SkillLevels, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
