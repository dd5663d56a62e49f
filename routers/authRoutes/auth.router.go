package authRoutes

import (
	authController "homecooked/controllers/auth"
	"homecooked/middleware"
	authValidator "homecooked/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/google", authValidator.GoogleLogin(), authController.GoogleLogin)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authValidator.LoginHistoryList(), authController.LoginHistoryList)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authValidator.ChangePassword(), authController.ChangePassword)
}
