package checkoutRoutes

import (
	checkoutController "homecooked/controllers/checkout"
	subscriptionController "homecooked/controllers/subscription"
	"homecooked/middleware"
	checkoutValidator "homecooked/validators/checkout"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
)

// SetupCheckoutRoutes registers checkout, order history and payment confirmation.
func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout", middleware.JWTMiddleware)
	checkoutGroup.Get("/quote", checkoutController.Quote)
	checkoutGroup.Post("/payment", checkoutController.InitPayment)
	checkoutGroup.Post("/", checkoutValidator.Checkout(), checkoutController.Checkout)

	orderGroup := app.Group("/orders", middleware.JWTMiddleware)
	orderGroup.Get("/", checkoutController.ListOrders)
	orderGroup.Get("/:id", checkoutController.GetOrder)

	app.Post("/payments/subscription/confirm", middleware.JWTMiddleware,
		profileValidator.ConfirmSubscription(), subscriptionController.ConfirmSubscription)
}
