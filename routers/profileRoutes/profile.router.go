package profileRoutes

import (
	profileController "homecooked/controllers/profile"
	recommendationController "homecooked/controllers/recommendation"
	"homecooked/middleware"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.JWTMiddleware)

	profileGroup.Get("/", profileController.GetProfile)
	profileGroup.Put("/", profileValidator.UpdateProfile(), profileController.UpdateProfile)
	profileGroup.Post("/onboarding", profileValidator.Onboarding(), profileController.Onboarding)
	profileGroup.Post("/allergies/toggle", profileValidator.ToggleAllergy(), profileController.ToggleAllergy)
	profileGroup.Get("/saved", profileController.ListSaved)
	profileGroup.Post("/saved/:recipeId/toggle", profileController.ToggleSaved)

	app.Post("/recommendations", middleware.JWTMiddleware, profileValidator.Recommendation(), recommendationController.Recommend)
}
