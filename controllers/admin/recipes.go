package adminController

import (
	"errors"
	"fmt"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/importer"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/store"
	"homecooked/utils"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListRecipes(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecipeList").(*adminValidator.RecipeListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filter := store.RecipeFilter{Category: reqData.Category, SkillLevel: reqData.SkillLevel, Search: reqData.Search}
	recipes, total, err := store.Recipes(database.Database.Db, filter, reqData.Page, reqData.Limit)
	if err != nil {
		logger.Log.Errorf("Error fetching recipes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe list.", fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func applyRecipe(recipe *models.Recipe, reqData *adminValidator.RecipeRequest) {
	recipe.Title = reqData.Title
	recipe.Description = reqData.Description
	recipe.PrepTime = reqData.PrepTime
	recipe.Servings = reqData.Servings
	recipe.Calories = reqData.Calories
	recipe.Price = reqData.Price
	recipe.ImageURL = reqData.ImageURL
	recipe.Category = reqData.Category
	recipe.SkillLevel = reqData.SkillLevel
	recipe.Ingredients = datatypes.NewJSONSlice(nonNil(reqData.Ingredients))
	recipe.Steps = datatypes.NewJSONSlice(nonNil(reqData.Steps))
	recipe.Nutrition = datatypes.NewJSONType(reqData.Nutrition)
	if reqData.IsActive != nil {
		recipe.IsActive = *reqData.IsActive
	}
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func CreateRecipe(c *fiber.Ctx) error {
	adminId, _ := c.Locals("userId").(uint)
	reqData, ok := c.Locals("validatedRecipe").(*adminValidator.RecipeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	recipe := models.Recipe{IsActive: true, CreatedBy: &adminId}
	applyRecipe(&recipe, reqData)

	if err := database.Database.Db.Create(&recipe).Error; err != nil {
		logger.Log.Errorf("Error creating recipe: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create recipe!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recipe created successfully.", recipe)
}

func recipeFromParam(c *fiber.Ctx) (*models.Recipe, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}
	recipe, err := store.GetRecipe(database.Database.Db, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
		}
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipe!", nil)
	}
	return recipe, nil
}

func UpdateRecipe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecipe").(*adminValidator.RecipeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	recipe, errResp := recipeFromParam(c)
	if recipe == nil {
		return errResp
	}

	applyRecipe(recipe, reqData)
	if err := database.Database.Db.Save(recipe).Error; err != nil {
		logger.Log.Errorf("Error updating recipe %d: %v", recipe.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update recipe!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe updated successfully.", recipe)
}

func DeleteRecipe(c *fiber.Ctx) error {
	recipe, errResp := recipeFromParam(c)
	if recipe == nil {
		return errResp
	}

	if err := database.Database.Db.Delete(recipe).Error; err != nil {
		logger.Log.Errorf("Error deleting recipe %d: %v", recipe.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete recipe!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe deleted successfully.", nil)
}

func BulkDeleteRecipes(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulkDelete").(*adminValidator.BulkDeleteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Where("id IN ?", reqData.IDs).Delete(&models.Recipe{})
	if result.Error != nil {
		logger.Log.Errorf("Error bulk deleting recipes: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete recipes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("%d recipe(s) deleted successfully.", result.RowsAffected),
		fiber.Map{"deleted": result.RowsAffected})
}

// insertImported stores parsed recipes in one batch and answers with them.
func insertImported(c *fiber.Ctx, recipes []models.Recipe, err error) error {
	if err != nil {
		if errors.Is(err, importer.ErrNoRecipes) || errors.Is(err, importer.ErrInvalidCSV) ||
			errors.Is(err, importer.ErrInvalidSpreadsheet) || errors.Is(err, importer.ErrUnsupportedFormat) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read the file!", nil)
	}

	adminId, _ := c.Locals("userId").(uint)
	for i := range recipes {
		recipes[i].CreatedBy = &adminId
		recipes[i].Ingredients = datatypes.NewJSONSlice([]models.Ingredient{})
		recipes[i].Steps = datatypes.NewJSONSlice([]models.CookingStep{})
	}

	if err := database.Database.Db.CreateInBatches(&recipes, 100).Error; err != nil {
		logger.Log.Errorf("[IMPORT] Error inserting recipes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to import recipes!", nil)
	}
	logger.Log.Infof("[IMPORT] Admin %d imported %d recipes", adminId, len(recipes))

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		fmt.Sprintf("Successfully imported %d recipes!", len(recipes)), recipes)
}

func ImportRecipes(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedImport").(*adminValidator.ImportRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	recipes, err := importer.Parse(reqData.Format, reqData.Data)
	return insertImported(c, recipes, err)
}

// ImportRecipesFile accepts a multipart "file" upload and picks the parser
// from its extension.
func ImportRecipesFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "file is required!"})
	}
	format := importer.FormatFromFilename(file.Filename)
	if format == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "file must be .csv, .md or .xlsx!"})
	}

	data, err := utils.ReadUploadedFile(file, config.AppConfig.MaxUploadSize)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File is too large!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read the file!", nil)
	}

	recipes, err := importer.ParseBytes(format, data)
	return insertImported(c, recipes, err)
}

func ExportRecipes(c *fiber.Ctx) error {
	recipes, _, err := store.Recipes(database.Database.Db, store.RecipeFilter{}, 0, 0)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipes!", nil)
	}

	file, err := importer.WriteXLSX(recipes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create Excel sheet!", nil)
	}

	filename := fmt.Sprintf("recipes-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Expires", "0")

	if err := file.Write(c.Response().BodyWriter()); err != nil {
		logger.Log.Errorf("Error writing Excel file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write Excel file!", nil)
	}
	return nil
}

// UploadRecipeImage stores a multipart "image" and points the recipe at it.
func UploadRecipeImage(c *fiber.Ctx) error {
	recipe, errResp := recipeFromParam(c)
	if recipe == nil {
		return errResp
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"image": "image is required!"})
	}

	name, err := utils.SaveUploadedImage(file, config.AppConfig.UploadDir, config.AppConfig.MaxUploadSize)
	switch {
	case errors.Is(err, utils.ErrUnsupportedImage):
		return middleware.ValidationErrorResponse(c, map[string]string{"image": err.Error()})
	case errors.Is(err, utils.ErrFileTooLarge):
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File is too large!", nil)
	case err != nil:
		logger.Log.Errorf("Error saving image for recipe %d: %v", recipe.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	recipe.ImageURL = utils.GetFileURL(name)
	if err := database.Database.Db.Model(recipe).Update("image_url", recipe.ImageURL).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update recipe!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded.", recipe)
}
