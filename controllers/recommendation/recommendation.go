package recommendationController

import (
	"context"
	"time"

	"homecooked/llm"
	"homecooked/logger"
	"homecooked/middleware"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
)

// Recommender is set at startup when an AI key is configured.
var Recommender llm.Recommender

func Recommend(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecommendation").(*profileValidator.RecommendationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if Recommender == nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Recommendations are not available right now.", nil)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	recs, err := Recommender.Recommend(ctx, reqData.Preferences)
	if err != nil {
		logger.Log.Errorf("Error getting recommendations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to get recommendations!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations.", recs)
}
