package catalogRoutes

import (
	catalogController "homecooked/controllers/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes registers the public storefront reads.
func SetupCatalogRoutes(app *fiber.App) {
	recipeGroup := app.Group("/recipes")
	recipeGroup.Get("/", catalogController.ListRecipes)
	recipeGroup.Get("/categories", catalogController.Categories)
	recipeGroup.Get("/:id", catalogController.GetRecipe)

	app.Get("/producers", catalogController.ListProducers)
	app.Get("/journal", catalogController.ListJournal)
	app.Get("/plans", catalogController.ListPlans)
	app.Get("/weekly-menus", catalogController.ListWeeklyMenus)
}
