package profileController

import (
	"homecooked/config"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/payments"
	"homecooked/store"
	"homecooked/storefront"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profile, err := store.GetProfile(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", profile)
}

func applyPreferences(profile *models.Profile, reqData *profileValidator.UpdateProfileRequest) {
	profile.People = reqData.People
	profile.RecipesPerWeek = reqData.RecipesPerWeek
	profile.SkillLevel = reqData.SkillLevel
	profile.Allergies = datatypes.NewJSONSlice(reqData.Allergies)
	profile.Preferences = datatypes.NewJSONSlice(reqData.Preferences)
}

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedProfile").(*profileValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	profile, err := store.GetProfile(db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	applyPreferences(profile, reqData)
	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error saving profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", profile)
}

// Onboarding stores the wizard answers and hands back the subscription
// payment payload. The shopper lands on the menu either way.
func Onboarding(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedProfile").(*profileValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	profile, err := store.GetProfile(db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	applyPreferences(profile, reqData)
	profile.Onboarded = true
	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error saving profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save your preferences!", nil)
	}

	settings := payments.Settings{
		PublicKey:    config.AppConfig.PaystackPublicKey,
		Currency:     config.AppConfig.Currency,
		PricePerMeal: config.AppConfig.PricePerMeal,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences saved.", fiber.Map{
		"profile":  profile,
		"checkout": payments.InitSubscription(settings, user, *profile),
		"view":     storefront.ViewMenu,
	})
}

func ToggleAllergy(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedAllergy").(*profileValidator.ToggleAllergyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	profile, err := store.GetProfile(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	profile.Allergies = datatypes.NewJSONSlice(storefront.ToggleAllergy(profile.Allergies, reqData.Allergy))
	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error saving allergies for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update allergies!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Allergies updated.", profile.Allergies)
}

func ListSaved(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	recipes, err := store.SavedRecipes(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching saved recipes for user %d: %v", userId, err)
		recipes = []models.Recipe{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Saved recipes.", recipes)
}

// ToggleSaved flips a favorite. The response carries the resulting saved ids.
func ToggleSaved(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	recipeId, err := c.ParamsInt("recipeId")
	if err != nil || recipeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}

	db := database.Database.Db
	if _, err := store.GetRecipe(db, uint(recipeId)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}

	savedIDs, err := store.SavedRecipeIDs(db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching saved recipes for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update saved recipes!", nil)
	}

	session := storefront.NewSession()
	session.SavedIDs = savedIDs
	saved := session.ToggleSaved(uint(recipeId))

	if saved {
		err = store.SaveRecipe(db, userId, uint(recipeId))
	} else {
		err = store.UnsaveRecipe(db, userId, uint(recipeId))
	}
	if err != nil {
		logger.Log.Errorf("Error toggling saved recipe %d for user %d: %v", recipeId, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update saved recipes!", nil)
	}

	message := "Recipe removed from saved."
	if saved {
		message = "Recipe saved."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"saved":    saved,
		"savedIds": session.SavedIDs,
	})
}
