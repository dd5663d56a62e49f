// Package routers assembles the Fiber application.
package routers

import (
	"homecooked/config"
	"homecooked/routers/adminRoutes"
	"homecooked/routers/authRoutes"
	"homecooked/routers/cartRoutes"
	"homecooked/routers/catalogRoutes"
	"homecooked/routers/checkoutRoutes"
	"homecooked/routers/profileRoutes"
	"homecooked/routers/subscriptionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the API with every route group. accessLog turns on the
// per-request log line.
func NewApp(accessLog bool) *fiber.App {
	bodyLimit := 4 * 1024 * 1024
	if config.AppConfig != nil && int(config.AppConfig.MaxUploadSize)+1024*1024 > bodyLimit {
		bodyLimit = int(config.AppConfig.MaxUploadSize) + 1024*1024
	}

	app := fiber.New(fiber.Config{
		AppName:   "homecooked",
		BodyLimit: bodyLimit,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if accessLog {
		app.Use(fiberLogger.New(fiberLogger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	if config.AppConfig != nil && config.AppConfig.UploadDir != "" {
		app.Static("/uploads", config.AppConfig.UploadDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "ok"})
	})

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	return app
}
