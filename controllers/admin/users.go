package adminController

import (
	"errors"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/store"
	"homecooked/validators"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type userRow struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Provider           string `json:"provider"`
	Status             string `json:"status"`
	People             int    `json:"people"`
	RecipesPerWeek     int    `json:"recipesPerWeek"`
	SubscriptionStatus string `json:"subscriptionStatus"`
	Onboarded          bool   `json:"onboarded"`
}

func ListUsers(c *fiber.Ctx) error {
	var query validators.Pagination
	if err := c.QueryParser(&query); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}
	query.Defaults()
	if query.Limit > 100 {
		query.Limit = 100
	}

	db := database.Database.Db
	var total int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&total).Error; err != nil {
		logger.Log.Errorf("Error counting users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	rows := []userRow{}
	err := db.Table("users").
		Select(`users.id, users.name, users.email, users.provider,
			COALESCE(profiles.status, ?) AS status,
			COALESCE(profiles.people, 2) AS people,
			COALESCE(profiles.recipes_per_week, 3) AS recipes_per_week,
			COALESCE(profiles.subscription_status, ?) AS subscription_status,
			COALESCE(profiles.onboarded, false) AS onboarded`, models.AccountActive, models.SubscriptionNone).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL").
		Where("users.role = ? AND users.deleted_at IS NULL", models.RoleUser).
		Order("users.id DESC").
		Offset((query.Page - 1) * query.Limit).Limit(query.Limit).
		Scan(&rows).Error
	if err != nil {
		logger.Log.Errorf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": rows,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// UpdateUserStatus sets the account status kept on the shopper's profile.
func UpdateUserStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserStatus").(*adminValidator.UserStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	id, ok := validators.ParamID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db
	var user models.User
	if err := db.Where("id = ? AND role = ?", id, models.RoleUser).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	profile, err := store.GetProfile(db, user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}
	profile.Status = reqData.Status
	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error updating status of user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated.", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}
