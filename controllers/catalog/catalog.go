package catalogController

import (
	"errors"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Read paths on the storefront never fail the page: a database error is
// logged and the client gets an empty list.

func ListRecipes(c *fiber.Ctx) error {
	var filter store.RecipeFilter
	if err := c.QueryParser(&filter); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	recipes, err := store.ActiveRecipes(database.Database.Db, filter)
	if err != nil {
		logger.Log.Errorf("Error fetching recipes: %v", err)
		recipes = []models.Recipe{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe list.", recipes)
}

func GetRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}

	recipe, err := store.GetRecipe(database.Database.Db, uint(id))
	if err != nil || !recipe.IsActive {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Errorf("Error fetching recipe %d: %v", id, err)
		}
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe details.", recipe)
}

func Categories(c *fiber.Ctx) error {
	categories, err := store.Categories(database.Database.Db)
	if err != nil {
		logger.Log.Errorf("Error fetching categories: %v", err)
		categories = []string{"All", "Saved"}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe categories.", categories)
}

func ListProducers(c *fiber.Ctx) error {
	producers, err := store.ActiveProducers(database.Database.Db)
	if err != nil {
		logger.Log.Errorf("Error fetching producers: %v", err)
		producers = []models.Producer{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Producer list.", producers)
}

func ListJournal(c *fiber.Ctx) error {
	entries, err := store.PublishedJournal(database.Database.Db)
	if err != nil {
		logger.Log.Errorf("Error fetching journal: %v", err)
		entries = []models.JournalEntry{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Journal entries.", entries)
}

func ListPlans(c *fiber.Ctx) error {
	plans, err := store.ActivePlans(database.Database.Db)
	if err != nil {
		logger.Log.Errorf("Error fetching plans: %v", err)
		plans = []models.SubscriptionPlan{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription plans.", plans)
}

type weeklyMenuView struct {
	models.WeeklyMenu
	Recipes []models.Recipe `json:"recipes"`
}

func ListWeeklyMenus(c *fiber.Ctx) error {
	db := database.Database.Db
	menus, err := store.PublishedWeeklyMenus(db)
	if err != nil {
		logger.Log.Errorf("Error fetching weekly menus: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menus.", []weeklyMenuView{})
	}

	views := make([]weeklyMenuView, 0, len(menus))
	for _, menu := range menus {
		view := weeklyMenuView{WeeklyMenu: menu, Recipes: []models.Recipe{}}
		catalog, err := store.Catalog(db, menu.RecipeIDs)
		if err != nil {
			logger.Log.Errorf("Error fetching recipes for week %s: %v", menu.WeekOf, err)
		}
		for _, id := range menu.RecipeIDs {
			if r, ok := catalog[id]; ok && r.IsActive {
				view.Recipes = append(view.Recipes, r)
			}
		}
		views = append(views, view)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly menus.", views)
}
