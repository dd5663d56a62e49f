package adminController

import (
	authController "homecooked/controllers/auth"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// AdminLogin is the back-office sign-in. It shares the shopper lockout rules
// and refuses accounts without the ADMIN role.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*adminValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, status, message := authController.Authenticate(database.Database.Db, reqData.Email, reqData.Password)
	if user == nil {
		return middleware.JsonResponse(c, status, false, message, nil)
	}
	if user.Role != models.RoleAdmin {
		logger.Log.Warnf("Non-admin user %d attempted admin login", user.ID)
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	authController.Track(c, user.ID, models.ProviderEmail)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func Stats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalRecipes, totalUsers, activeUsers, weeklyMenus, totalOrders int64
	db.Model(&models.Recipe{}).Count(&totalRecipes)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleUser, false).Count(&totalUsers)
	db.Model(&models.Profile{}).Where("status = ?", models.AccountActive).Count(&activeUsers)
	db.Model(&models.WeeklyMenu{}).Count(&weeklyMenus)
	db.Model(&models.Order{}).Count(&totalOrders)

	var recent []models.Recipe
	if err := db.Order("created_at DESC").Order("id DESC").Limit(3).Find(&recent).Error; err != nil {
		logger.Log.Errorf("Error fetching recent recipes: %v", err)
		recent = []models.Recipe{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats.", fiber.Map{
		"totalRecipes":  totalRecipes,
		"totalUsers":    totalUsers,
		"activeUsers":   activeUsers,
		"weeklyMenus":   weeklyMenus,
		"totalOrders":   totalOrders,
		"recentRecipes": recent,
	})
}
