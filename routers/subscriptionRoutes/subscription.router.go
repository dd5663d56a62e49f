package subscriptionRoutes

import (
	subscriptionController "homecooked/controllers/subscription"
	"homecooked/middleware"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App) {
	subscriptionGroup := app.Group("/subscription", middleware.JWTMiddleware)

	subscriptionGroup.Get("/weeks", subscriptionController.UpcomingWeeks)
	subscriptionGroup.Post("/weeks/toggle", profileValidator.ToggleWeek(), subscriptionController.ToggleWeek)
	subscriptionGroup.Put("/plan", profileValidator.UpdatePlan(), subscriptionController.UpdatePlan)
}
