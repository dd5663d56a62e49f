package adminRoutes

import (
	adminController "homecooked/controllers/admin"
	"homecooked/middleware"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers the back office. Login is open, everything else
// needs an admin token.
func SetupAdminRoutes(app *fiber.App) {
	app.Post("/admin/login", adminValidator.AdminLogin(), adminController.AdminLogin)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/stats", adminController.Stats)

	// Recipes
	adminGroup.Get("/recipes", adminValidator.RecipeList(), adminController.ListRecipes)
	adminGroup.Post("/recipes", adminValidator.Recipe(), adminController.CreateRecipe)
	adminGroup.Get("/recipes/export", adminController.ExportRecipes)
	adminGroup.Post("/recipes/bulk-delete", adminValidator.BulkDelete(), adminController.BulkDeleteRecipes)
	adminGroup.Post("/recipes/import", adminValidator.Import(), adminController.ImportRecipes)
	adminGroup.Post("/recipes/import/file", adminController.ImportRecipesFile)
	adminGroup.Put("/recipes/:id", adminValidator.Recipe(), adminController.UpdateRecipe)
	adminGroup.Delete("/recipes/:id", adminController.DeleteRecipe)
	adminGroup.Post("/recipes/:id/image", adminController.UploadRecipeImage)

	// Weekly menus
	adminGroup.Get("/weekly-menus", adminController.ListWeeklyMenus)
	adminGroup.Put("/weekly-menus", adminValidator.WeeklyMenu(), adminController.UpsertWeeklyMenu)
	adminGroup.Post("/weekly-menus/toggle", adminValidator.ToggleWeeklyRecipe(), adminController.ToggleWeeklyRecipe)
	adminGroup.Post("/weekly-menus/next-week", adminController.AddNextWeek)
	adminGroup.Patch("/weekly-menus/publish", adminValidator.Publish(), adminController.PublishWeeklyMenu)

	// Users and orders
	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Patch("/users/:id/status", adminValidator.UserStatus(), adminController.UpdateUserStatus)
	adminGroup.Get("/orders", adminValidator.OrderList(), adminController.ListOrders)
	adminGroup.Patch("/orders/:id/status", adminValidator.OrderStatus(), adminController.UpdateOrderStatus)

	// Content
	adminGroup.Get("/producers", adminController.ListProducers)
	adminGroup.Post("/producers", adminValidator.Producer(), adminController.CreateProducer)
	adminGroup.Put("/producers/:id", adminValidator.Producer(), adminController.UpdateProducer)
	adminGroup.Delete("/producers/:id", adminController.DeleteProducer)

	adminGroup.Get("/journal", adminController.ListJournal)
	adminGroup.Post("/journal", adminValidator.Journal(), adminController.CreateJournalEntry)
	adminGroup.Put("/journal/:id", adminValidator.Journal(), adminController.UpdateJournalEntry)
	adminGroup.Delete("/journal/:id", adminController.DeleteJournalEntry)

	adminGroup.Get("/plans", adminController.ListPlans)
	adminGroup.Post("/plans", adminValidator.Plan(), adminController.CreatePlan)
	adminGroup.Put("/plans/:id", adminValidator.Plan(), adminController.UpdatePlan)
	adminGroup.Delete("/plans/:id", adminController.DeletePlan)
}
