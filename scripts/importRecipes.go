package main

import (
	"flag"
	"os"

	"homecooked/config"
	"homecooked/logger"
	"homecooked/database"
	"homecooked/importer"
	"homecooked/models"

	"gorm.io/datatypes"
)

// Loads recipes from a csv, markdown or xlsx file. Recipes whose title
// already exists are updated in place.
func main() {
	path := flag.String("file", "recipes.csv", "file to import")
	format := flag.String("format", "", "csv, markdown or xlsx (default: from the file extension)")
	flag.Parse()

	config.LoadConfig()
	if err := logger.Init(config.AppConfig.LogLevel, config.AppConfig.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()
	database.ConnectDb()
	db := database.Database.Db

	if *format == "" {
		*format = importer.FormatFromFilename(*path)
	}
	if *format == "" {
		logger.Log.Fatalf("Cannot tell the format of %s, pass -format", *path)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		logger.Log.Fatalf("Failed to open file: %v", err)
	}

	recipes, err := importer.ParseBytes(*format, data)
	if err != nil {
		logger.Log.Fatalf("Failed to parse %s: %v", *path, err)
	}
	logger.Log.Infof("Total rows to import: %d", len(recipes))

	inserted, updated := 0, 0
	for _, recipe := range recipes {
		var existing models.Recipe
		if err := db.Where("title = ?", recipe.Title).First(&existing).Error; err != nil {
			recipe.Ingredients = datatypes.NewJSONSlice([]models.Ingredient{})
			recipe.Steps = datatypes.NewJSONSlice([]models.CookingStep{})
			if err := db.Create(&recipe).Error; err != nil {
				logger.Log.Errorf("Error inserting recipe %q: %v", recipe.Title, err)
				continue
			}
			inserted++
			continue
		}

		existing.Description = recipe.Description
		existing.PrepTime = recipe.PrepTime
		existing.Servings = recipe.Servings
		existing.Calories = recipe.Calories
		existing.Price = recipe.Price
		existing.ImageURL = recipe.ImageURL
		existing.Category = recipe.Category
		existing.SkillLevel = recipe.SkillLevel
		existing.IsActive = recipe.IsActive
		if err := db.Save(&existing).Error; err != nil {
			logger.Log.Errorf("Error updating recipe %q: %v", recipe.Title, err)
			continue
		}
		updated++
	}

	logger.Log.Infof("=== Import Complete ===")
	logger.Log.Infof("Inserted: %d", inserted)
	logger.Log.Infof("Updated: %d", updated)
}
