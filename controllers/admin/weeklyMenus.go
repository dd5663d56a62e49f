package adminController

import (
	"errors"
	"time"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/store"
	"homecooked/weeks"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// now is replaced in tests.
var now = time.Now

func ListWeeklyMenus(c *fiber.Ctx) error {
	menus, err := store.WeeklyMenus(database.Database.Db)
	if err != nil {
		logger.Log.Errorf("Error fetching weekly menus: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch weekly menus!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menus.", menus)
}

// uniqueIDs drops repeated ids keeping first occurrence order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func UpsertWeeklyMenu(c *fiber.Ctx) error {
	adminId, _ := c.Locals("userId").(uint)
	reqData, ok := c.Locals("validatedWeeklyMenu").(*adminValidator.WeeklyMenuRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	week, err := weeks.Parse(reqData.WeekOf)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"weekOf": "weekOf must be a date in YYYY-MM-DD format!"})
	}

	db := database.Database.Db
	ids := uniqueIDs(reqData.RecipeIDs)
	catalog, err := store.Catalog(db, ids)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipes!", nil)
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"recipeIds": "Unknown recipe in selection!"})
		}
	}

	menu, err := store.UpsertWeeklyMenu(db, week, ids, &adminId)
	if err != nil {
		logger.Log.Errorf("Error saving weekly menu %s: %v", week, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save weekly menu!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menu saved.", menu)
}

// ToggleWeeklyRecipe adds the recipe to the week's selection or removes it.
func ToggleWeeklyRecipe(c *fiber.Ctx) error {
	adminId, _ := c.Locals("userId").(uint)
	reqData, ok := c.Locals("validatedWeeklyRecipe").(*adminValidator.ToggleWeeklyRecipeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	week, err := weeks.Parse(reqData.WeekOf)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"weekOf": "weekOf must be a date in YYYY-MM-DD format!"})
	}

	db := database.Database.Db
	if _, err := store.GetRecipe(db, reqData.RecipeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}

	var ids []uint
	menu, err := store.GetWeeklyMenu(db, week)
	switch {
	case err == nil:
		ids = menu.RecipeIDs
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch weekly menu!", nil)
	}

	next := make([]uint, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == reqData.RecipeID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, reqData.RecipeID)
	}

	menu, err = store.UpsertWeeklyMenu(db, week, next, &adminId)
	if err != nil {
		logger.Log.Errorf("Error saving weekly menu %s: %v", week, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save weekly menu!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menu updated.", menu)
}

// AddNextWeek creates an empty menu for next week unless it already exists.
func AddNextWeek(c *fiber.Ctx) error {
	adminId, _ := c.Locals("userId").(uint)
	db := database.Database.Db
	week := weeks.NextWeek(now())

	menu, err := store.GetWeeklyMenu(db, week)
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menu already exists.", menu)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch weekly menu!", nil)
	}

	menu, err = store.UpsertWeeklyMenu(db, week, nil, &adminId)
	if err != nil {
		logger.Log.Errorf("Error creating weekly menu %s: %v", week, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create weekly menu!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Weekly menu created.", menu)
}

func PublishWeeklyMenu(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPublish").(*adminValidator.PublishRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	week, err := weeks.Parse(reqData.WeekOf)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"weekOf": "weekOf must be a date in YYYY-MM-DD format!"})
	}

	db := database.Database.Db
	menu, err := store.GetWeeklyMenu(db, week)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Weekly menu not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch weekly menu!", nil)
	}

	if err := db.Model(&models.WeeklyMenu{}).Where("id = ?", menu.ID).Update("is_published", reqData.IsPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update weekly menu!", nil)
	}
	menu.IsPublished = reqData.IsPublished

	message := "Weekly menu unpublished."
	if menu.IsPublished {
		message = "Weekly menu published."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, menu)
}
