package adminController

import (
	"errors"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/store"
	"homecooked/validators"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListOrders(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrderList").(*adminValidator.OrderListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	orders, err := store.AllOrders(database.Database.Db, reqData.Status)
	if err != nil {
		logger.Log.Errorf("Error fetching orders: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order list.", orders)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrderStatus").(*adminValidator.OrderStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	id, ok := validators.ParamID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	order, err := store.UpdateOrderStatus(database.Database.Db, id, reqData.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		}
		logger.Log.Errorf("Error updating order %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order status updated.", order)
}
