package subscriptionController

import (
	"context"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/payments"
	"homecooked/pricing"
	"homecooked/store"
	"homecooked/weeks"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

const (
	upcomingWeeks = 4

	WeekScheduled = "Scheduled"
	WeekPaused    = "Paused"
)

// now is replaced in tests.
var now = time.Now

type deliveryWeek struct {
	WeekOf string `json:"weekOf"`
	Status string `json:"status"`
}

func schedule(profile *models.Profile, at time.Time) []deliveryWeek {
	paused := make(map[string]bool, len(profile.PausedWeeks))
	for _, w := range profile.PausedWeeks {
		paused[w] = true
	}

	out := make([]deliveryWeek, 0, upcomingWeeks)
	for _, week := range weeks.Upcoming(at, upcomingWeeks) {
		status := WeekScheduled
		if paused[week] {
			status = WeekPaused
		}
		out = append(out, deliveryWeek{WeekOf: week, Status: status})
	}
	return out
}

func UpcomingWeeks(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profile, err := store.GetProfile(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch your deliveries!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upcoming deliveries.", schedule(profile, now()))
}

// ToggleWeek pauses or resumes the delivery of one upcoming week.
func ToggleWeek(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedWeek").(*profileValidator.ToggleWeekRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	week, err := weeks.Parse(reqData.WeekOf)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"weekOf": "weekOf must be a date in YYYY-MM-DD format!"})
	}
	upcoming := false
	for _, w := range weeks.Upcoming(now(), upcomingWeeks) {
		if w == week {
			upcoming = true
		}
	}
	if !upcoming {
		return middleware.ValidationErrorResponse(c, map[string]string{"weekOf": "Only upcoming deliveries can be paused!"})
	}

	db := database.Database.Db
	profile, err := store.GetProfile(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch your deliveries!", nil)
	}

	paused := make([]string, 0, len(profile.PausedWeeks)+1)
	removed := false
	for _, w := range profile.PausedWeeks {
		if w == week {
			removed = true
			continue
		}
		paused = append(paused, w)
	}
	if !removed {
		paused = append(paused, week)
	}
	profile.PausedWeeks = datatypes.NewJSONSlice(paused)

	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error saving paused weeks for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your deliveries!", nil)
	}

	message := "Delivery paused."
	if removed {
		message = "Delivery resumed."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, schedule(profile, now()))
}

func UpdatePlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedPlan").(*profileValidator.UpdatePlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	planCode, err := pricing.LookupPlanCode(reqData.People, reqData.RecipesPerWeek)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"plan": err.Error()})
	}

	db := database.Database.Db
	profile, err := store.GetProfile(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}
	profile.People = reqData.People
	profile.RecipesPerWeek = reqData.RecipesPerWeek
	if err := store.SaveProfile(db, profile); err != nil {
		logger.Log.Errorf("Error saving plan for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan updated.", fiber.Map{
		"profile":     profile,
		"planCode":    planCode,
		"weeklyPrice": pricing.WeeklyPrice(profile.People, profile.RecipesPerWeek, config.AppConfig.PricePerMeal),
	})
}

// ConfirmSubscription records the codes returned by the payment widget.
// With a secret key configured the reference must be unused and verify for
// at least the weekly plan price; the provider's codes then take precedence.
func ConfirmSubscription(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedSubscription").(*profileValidator.ConfirmSubscriptionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	codes := payments.SubscriptionCodes{
		Reference:         reqData.Reference,
		SubscriptionCode:  reqData.SubscriptionCode,
		CustomerCode:      reqData.CustomerCode,
		AuthorizationCode: reqData.AuthorizationCode,
	}

	db := database.Database.Db
	current, err := store.GetProfile(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	client := payments.NewClient(config.AppConfig.PaystackBaseURL, config.AppConfig.PaystackSecretKey)
	if client.Enabled() {
		used, err := payments.ReferenceUsed(db, reqData.Reference)
		if err != nil {
			logger.Log.Errorf("Error checking reference %s: %v", reqData.Reference, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm subscription!", nil)
		}
		if used {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This payment has already been used!", nil)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 20*time.Second)
		defer cancel()
		tx, err := client.Verify(ctx, reqData.Reference)
		if err != nil {
			logger.Log.Warnf("[PAYSTACK] Subscription verification failed for %s: %v", reqData.Reference, err)
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment could not be verified!", nil)
		}
		due := pricing.ToPence(pricing.WeeklyPrice(current.People, current.RecipesPerWeek, config.AppConfig.PricePerMeal))
		if tx.Amount < due {
			logger.Log.Warnf("[PAYSTACK] Subscription amount mismatch for %s: paid %d, due %d", reqData.Reference, tx.Amount, due)
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment amount does not match your plan price!", nil)
		}
		if tx.Customer.CustomerCode != "" {
			codes.CustomerCode = tx.Customer.CustomerCode
		}
		if tx.Authorization.AuthorizationCode != "" {
			codes.AuthorizationCode = tx.Authorization.AuthorizationCode
		}
	}

	profile, err := payments.ConfirmSubscription(db, userId, codes, now())
	if err != nil {
		logger.Log.Errorf("Error confirming subscription for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm subscription!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription active.", profile)
}
