package cartRoutes

import (
	cartController "homecooked/controllers/cart"
	"homecooked/middleware"
	cartValidator "homecooked/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart", middleware.JWTMiddleware)

	cartGroup.Get("/", cartController.GetCart)
	cartGroup.Post("/add", cartValidator.Add(), cartController.AddToCart)
	cartGroup.Patch("/quantity", cartValidator.UpdateQuantity(), cartController.UpdateQuantity)
	cartGroup.Delete("/", cartController.ClearCart)
}
