package subscriptionController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/models"
	profileValidator "homecooked/validators/profile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *gorm.DB, uint) {
	t.Helper()
	config.AppConfig = &config.Config{PricePerMeal: 8.5, Currency: "GBP"}
	db, err := database.ConnectTestDb()
	require.NoError(t, err)

	user := models.User{Name: "Cook", Email: "cook@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	// Wednesday
	now = func() time.Time { return time.Date(2024, 10, 16, 12, 0, 0, 0, time.Local) }
	t.Cleanup(func() { now = time.Now })

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		return c.Next()
	})
	app.Get("/weeks", UpcomingWeeks)
	app.Post("/weeks/toggle", profileValidator.ToggleWeek(), ToggleWeek)
	app.Put("/plan", profileValidator.UpdatePlan(), UpdatePlan)
	app.Post("/confirm", profileValidator.ConfirmSubscription(), ConfirmSubscription)
	return app, db, user.ID
}

func send(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestUpcomingWeeks(t *testing.T) {
	app, _, _ := setup(t)

	status, env := send(t, app, "GET", "/weeks", nil)
	require.Equal(t, fiber.StatusOK, status)
	var weeks []deliveryWeek
	require.NoError(t, json.Unmarshal(env.Data, &weeks))
	assert.Equal(t, []deliveryWeek{
		{WeekOf: "2024-10-21", Status: WeekScheduled},
		{WeekOf: "2024-10-28", Status: WeekScheduled},
		{WeekOf: "2024-11-04", Status: WeekScheduled},
		{WeekOf: "2024-11-11", Status: WeekScheduled},
	}, weeks)
}

func TestToggleWeek(t *testing.T) {
	app, db, userID := setup(t)

	// any day of the week selects that week
	status, env := send(t, app, "POST", "/weeks/toggle", fiber.Map{"weekOf": "2024-10-30"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Delivery paused.", env.Message)
	var weeks []deliveryWeek
	require.NoError(t, json.Unmarshal(env.Data, &weeks))
	assert.Equal(t, WeekPaused, weeks[1].Status)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", userID).First(&profile).Error)
	assert.Equal(t, []string{"2024-10-28"}, []string(profile.PausedWeeks))

	status, env = send(t, app, "POST", "/weeks/toggle", fiber.Map{"weekOf": "2024-10-28"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Delivery resumed.", env.Message)

	status, _ = send(t, app, "POST", "/weeks/toggle", fiber.Map{"weekOf": "2024-10-14"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	status, _ = send(t, app, "POST", "/weeks/toggle", fiber.Map{"weekOf": "next week"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestUpdatePlan(t *testing.T) {
	app, _, _ := setup(t)

	status, env := send(t, app, "PUT", "/plan", fiber.Map{"people": 4, "recipesPerWeek": 5})
	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Profile     models.Profile `json:"profile"`
		PlanCode    string         `json:"planCode"`
		WeeklyPrice float64        `json:"weeklyPrice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 4, data.Profile.People)
	assert.Equal(t, "PLN_4people5meals", data.PlanCode)
	assert.InDelta(t, 170.0, data.WeeklyPrice, 0.001)

	status, _ = send(t, app, "PUT", "/plan", fiber.Map{"people": 3, "recipesPerWeek": 5})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestConfirmSubscription(t *testing.T) {
	app, _, _ := setup(t)

	status, env := send(t, app, "POST", "/confirm", fiber.Map{
		"reference": "sub_1", "subscriptionCode": "SUB_1", "customerCode": "CUS_widget",
	})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, models.SubscriptionActive, profile.SubscriptionStatus)
	assert.Equal(t, "CUS_widget", profile.CustomerCode)
}

// fakePaystack verifies every reference in amounts, in pence.
func fakePaystack(t *testing.T, amounts map[string]int64) {
	t.Helper()
	paystack := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ref := strings.TrimPrefix(r.URL.Path, "/transaction/verify/")
		amount, ok := amounts[ref]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":false,"message":"not found"}`))
			return
		}
		fmt.Fprintf(w, `{"status":true,"message":"ok","data":{"status":"success","reference":%q,"amount":%d,
			"customer":{"customer_code":"CUS_real"},"authorization":{"authorization_code":"AUTH_real"}}}`, ref, amount)
	}))
	t.Cleanup(paystack.Close)
	config.AppConfig.PaystackBaseURL = paystack.URL
	config.AppConfig.PaystackSecretKey = "sk_test"
}

func TestConfirmSubscriptionUsesVerifiedCodes(t *testing.T) {
	app, _, _ := setup(t)
	fakePaystack(t, map[string]int64{"sub_ok": 5100})

	status, _ := send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_forged", "customerCode": "CUS_fake"})
	assert.Equal(t, fiber.StatusPaymentRequired, status)

	status, env := send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_ok", "customerCode": "CUS_fake"})
	require.Equal(t, fiber.StatusOK, status)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "CUS_real", profile.CustomerCode)
	assert.Equal(t, "sub_ok", profile.SubscriptionReference)
}

func TestConfirmSubscriptionRejectsShortPayment(t *testing.T) {
	app, db, userID := setup(t)
	// default plan is 2 people x 3 meals at 8.50
	fakePaystack(t, map[string]int64{"sub_short": 5099, "sub_full": 5100})

	status, env := send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_short"})
	assert.Equal(t, fiber.StatusPaymentRequired, status)
	assert.Equal(t, "Payment amount does not match your plan price!", env.Message)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", userID).First(&profile).Error)
	assert.Equal(t, models.SubscriptionNone, profile.SubscriptionStatus)

	status, _ = send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_full"})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestConfirmSubscriptionRejectsUsedReference(t *testing.T) {
	app, db, userID := setup(t)
	fakePaystack(t, map[string]int64{"sub_once": 5100, "order_paid": 9000})

	status, _ := send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_once"})
	require.Equal(t, fiber.StatusOK, status)

	status, env := send(t, app, "POST", "/confirm", fiber.Map{"reference": "sub_once"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "This payment has already been used!", env.Message)

	require.NoError(t, db.Create(&models.Order{
		UserID: userID, OrderNumber: "HC-TEST-1", PaymentReference: "order_paid",
	}).Error)
	status, _ = send(t, app, "POST", "/confirm", fiber.Map{"reference": "order_paid"})
	assert.Equal(t, fiber.StatusConflict, status)
}
