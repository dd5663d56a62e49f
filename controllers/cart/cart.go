package cartController

import (
	"homecooked/box"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/store"
	"homecooked/storefront"
	cartValidator "homecooked/validators/cart"

	"github.com/gofiber/fiber/v2"
)

type cartView struct {
	Items         []box.Item `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	DistinctCount int        `json:"distinctCount"`
	TotalQuantity int        `json:"totalQuantity"`
	BoxLimit      int        `json:"boxLimit"`
	Progress      float64    `json:"progress"`
	BoxComplete   bool       `json:"boxComplete"`
	DrawerOpen    bool       `json:"drawerOpen"`
}

func newCartView(s *storefront.Session) cartView {
	return cartView{
		Items:         s.Box.Items,
		Subtotal:      s.Subtotal(),
		DistinctCount: s.Box.DistinctCount(),
		TotalQuantity: s.Box.TotalQuantity(),
		BoxLimit:      s.Profile.RecipesPerWeek,
		Progress:      s.Progress(),
		BoxComplete:   s.CanCheckout(),
		DrawerOpen:    s.DrawerOpen,
	}
}

func GetCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, err := store.LoadSession(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading cart for user %d: %v", userId, err)
		session = storefront.NewSession()
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your box.", newCartView(session))
}

// AddToCart merges one kit of the recipe into the box. drawerOpen is true
// once the box holds the weekly number of distinct recipes.
func AddToCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCartAdd").(*cartValidator.AddRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	recipe, err := store.GetRecipe(db, reqData.RecipeID)
	if err != nil || !recipe.IsActive {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}

	session, err := store.LoadSession(db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading cart for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your box!", nil)
	}

	session.AddToCart(*recipe)
	if err := store.SaveCart(db, userId, session.Box); err != nil {
		logger.Log.Errorf("Error saving cart for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your box!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to your box.", newCartView(session))
}

func UpdateQuantity(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCartQuantity").(*cartValidator.UpdateQuantityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	session, err := store.LoadSession(db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading cart for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your box!", nil)
	}

	session.UpdateQuantity(reqData.RecipeID, reqData.Delta)
	if err := store.SaveCart(db, userId, session.Box); err != nil {
		logger.Log.Errorf("Error saving cart for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update your box!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Box updated.", newCartView(session))
}

func ClearCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	session, err := store.LoadSession(db, userId)
	if err != nil {
		session = storefront.NewSession()
	}
	session.Box.Clear()
	if err := store.SaveCart(db, userId, session.Box); err != nil {
		logger.Log.Errorf("Error clearing cart for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear your box!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Box cleared.", newCartView(session))
}
