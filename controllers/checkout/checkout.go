package checkoutController

import (
	"context"
	"errors"
	"strconv"
	"time"

	"homecooked/box"
	"homecooked/config"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/payments"
	"homecooked/pricing"
	"homecooked/store"
	"homecooked/storefront"
	"homecooked/utils"
	"homecooked/weeks"
	checkoutValidator "homecooked/validators/checkout"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func paymentSettings() payments.Settings {
	return payments.Settings{
		PublicKey:    config.AppConfig.PaystackPublicKey,
		Currency:     config.AppConfig.Currency,
		PricePerMeal: config.AppConfig.PricePerMeal,
	}
}

func quoteFor(s *storefront.Session) pricing.Quote {
	return pricing.NewQuote(s.Subtotal(), config.AppConfig.ShippingFee)
}

func Quote(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, err := store.LoadSession(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading session for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load your box!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout quote.", fiber.Map{
		"people":      session.Profile.People,
		"quote":       quoteFor(session),
		"boxComplete": session.CanCheckout(),
	})
}

// InitPayment returns the one-off payment payload for the current box.
func InitPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	session, err := store.LoadSession(db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading session for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load your box!", nil)
	}
	if session.Box.DistinctCount() == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Your box is empty!", nil)
	}

	quote := quoteFor(session)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initialised.", fiber.Map{
		"quote":    quote,
		"checkout": payments.InitPayment(paymentSettings(), user, quote.Total),
	})
}

// buildOrder snapshots the box with the prices it has right now.
func buildOrder(userID uint, b *box.Box, people int, quote pricing.Quote, reqData *checkoutValidator.CheckoutRequest, at time.Time) (models.Order, error) {
	ids := make([]uint, 0, len(b.Items))
	quantities := make(map[string]int, len(b.Items))
	lines := make([]models.OrderLine, 0, len(b.Items))
	for _, item := range b.Items {
		ids = append(ids, item.ID)
		quantities[strconv.FormatUint(uint64(item.ID), 10)] = item.Quantity
		lines = append(lines, models.OrderLine{
			RecipeID: item.ID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order := models.Order{
		UserID:           userID,
		OrderNumber:      pricing.NewOrderNumber(at),
		RecipeIDs:        datatypes.NewJSONSlice(ids),
		Quantities:       datatypes.NewJSONType(quantities),
		Lines:            datatypes.NewJSONSlice(lines),
		People:           people,
		Subtotal:         quote.Subtotal,
		Shipping:         quote.Shipping,
		TotalPrice:       quote.Total,
		Status:           models.OrderPending,
		FirstName:        reqData.FirstName,
		LastName:         reqData.LastName,
		Email:            reqData.Email,
		Address:          reqData.Address,
		City:             reqData.City,
		Postcode:         reqData.Postcode,
		PaymentReference: reqData.PaymentReference,
	}

	if reqData.DeliveryDate != "" {
		delivery, err := time.ParseInLocation(weeks.Layout, reqData.DeliveryDate, time.Local)
		if err != nil {
			return order, err
		}
		if delivery.Before(weeks.Day(at)) {
			return order, errDeliveryInPast
		}
		order.DeliveryDate = &delivery
	}
	return order, nil
}

var errDeliveryInPast = errors.New("Delivery date is in the past!")

// Checkout turns the box into a pending order and empties it. When a
// Paystack secret key is configured the payment reference must verify for at
// least the quoted total.
func Checkout(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCheckout").(*checkoutValidator.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	session, err := store.LoadSession(db, userId)
	if err != nil {
		logger.Log.Errorf("Error loading session for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load your box!", nil)
	}
	if session.Box.DistinctCount() == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Your box is empty!", nil)
	}

	quote := quoteFor(session)
	now := time.Now()

	order, err := buildOrder(userId, session.Box, session.Profile.People, quote, reqData, now)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"deliveryDate": err.Error()})
	}

	client := payments.NewClient(config.AppConfig.PaystackBaseURL, config.AppConfig.PaystackSecretKey)
	if client.Enabled() {
		if reqData.PaymentReference == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"paymentReference": "paymentReference is required!"})
		}

		var existing int64
		db.Model(&models.Order{}).Where("payment_reference = ?", reqData.PaymentReference).Count(&existing)
		if existing > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This payment has already been used!", nil)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 20*time.Second)
		defer cancel()
		tx, err := client.Verify(ctx, reqData.PaymentReference)
		if err != nil {
			logger.Log.Warnf("[PAYSTACK] Verification failed for %s: %v", reqData.PaymentReference, err)
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment could not be verified!", nil)
		}
		if tx.Amount < pricing.ToPence(quote.Total) {
			logger.Log.Warnf("[PAYSTACK] Amount mismatch for %s: paid %d, due %d", reqData.PaymentReference, tx.Amount, pricing.ToPence(quote.Total))
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment amount does not match your box total!", nil)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := store.CreateOrder(tx, &order); err != nil {
			return err
		}
		return store.SaveCart(tx, userId, box.New())
	})
	if err != nil {
		logger.Log.Errorf("Error creating order for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to place your order!", nil)
	}

	session.CompleteOrder()
	utils.SendOrderConfirmationEmail(order)
	logger.Log.Infof("Order %s placed by user %d for %.2f", order.OrderNumber, userId, order.TotalPrice)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order placed successfully.", fiber.Map{
		"order":   order,
		"session": session,
		"view":    session.View,
	})
}

func ListOrders(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orders, err := store.UserOrders(database.Database.Db, userId)
	if err != nil {
		logger.Log.Errorf("Error fetching orders for user %d: %v", userId, err)
		orders = []models.Order{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order list.", orders)
}

func GetOrder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	orderId, err := c.ParamsInt("id")
	if err != nil || orderId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	order, err := store.UserOrder(database.Database.Db, userId, uint(orderId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch order!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order details.", order)
}
