package authController

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/models"
	authValidator "homecooked/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, GoogleClientID: "client-123"}
	db, err := database.ConnectTestDb()
	require.NoError(t, err)

	verifyGoogleToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good-token" || audience != "client-123" {
			return nil, errors.New("idtoken: invalid token")
		}
		return &idtoken.Payload{Claims: map[string]interface{}{
			"email":          "Chef@Gmail.com",
			"email_verified": true,
			"name":           "Chef",
		}}, nil
	}
	t.Cleanup(func() { verifyGoogleToken = idtoken.Validate })

	app := fiber.New()
	app.Post("/google", authValidator.GoogleLogin(), GoogleLogin)
	return app, db
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestGoogleLoginCreatesThenFindsUser(t *testing.T) {
	app, db := setup(t)

	status, body := post(t, app, "/google", fiber.Map{"idToken": "good-token"})
	require.Equal(t, fiber.StatusOK, status, body["message"])
	assert.Equal(t, "User registered successfully.", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ONBOARDING", data["session"].(map[string]interface{})["view"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "chef@gmail.com").First(&user).Error)
	assert.Equal(t, models.ProviderGoogle, user.Provider)
	assert.Empty(t, user.Password)

	var profiles int64
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profiles)
	assert.EqualValues(t, 1, profiles)

	status, body = post(t, app, "/google", fiber.Map{"idToken": "good-token"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Login successful.", body["message"])

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users)

	var logins int64
	db.Model(&models.LoginTracking{}).Where("provider = ?", models.ProviderGoogle).Count(&logins)
	assert.EqualValues(t, 2, logins)
}

func TestGoogleLoginRejects(t *testing.T) {
	app, _ := setup(t)

	status, _ := post(t, app, "/google", fiber.Map{"idToken": "forged"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = post(t, app, "/google", fiber.Map{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	config.AppConfig.GoogleClientID = ""
	status, _ = post(t, app, "/google", fiber.Map{"idToken": "good-token"})
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestAuthenticate(t *testing.T) {
	_, db := setup(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), 4)
	require.NoError(t, err)
	user := models.User{Email: "cook@example.com", Password: string(hash), Provider: models.ProviderEmail, Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.User{Email: "g@example.com", Provider: models.ProviderGoogle}).Error)

	got, status, _ := Authenticate(db, "cook@example.com", "supersecret")
	require.NotNil(t, got)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotNil(t, got.LastLogin)

	_, status, message := Authenticate(db, "nobody@example.com", "supersecret")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials!", message)

	_, _, message = Authenticate(db, "g@example.com", "anything")
	assert.Equal(t, "This account signs in with Google.", message)

	// stale failures do not count towards the lockout
	old := time.Now().Add(-2 * failureWindow)
	require.NoError(t, db.Model(&user).Updates(map[string]interface{}{
		"failed_login_attempts": 2, "last_failed_login": old,
	}).Error)
	_, _, message = Authenticate(db, "cook@example.com", "nope")
	assert.Equal(t, "Wrong Password", message)
	require.NoError(t, db.First(&user, user.ID).Error)
	assert.Equal(t, 1, user.FailedLoginAttempts)
	assert.False(t, user.IsBlocked)

	Authenticate(db, "cook@example.com", "nope")
	Authenticate(db, "cook@example.com", "nope")
	require.NoError(t, db.First(&user, user.ID).Error)
	assert.True(t, user.IsBlocked)
	assert.Equal(t, 0, user.FailedLoginAttempts)

	_, _, message = Authenticate(db, "cook@example.com", "supersecret")
	assert.Contains(t, message, "temporarily blocked")

	// the block lifts after a minute
	past := time.Now().Add(-time.Second)
	require.NoError(t, db.Model(&user).Update("blocked_until", past).Error)
	got, _, _ = Authenticate(db, "cook@example.com", "supersecret")
	require.NotNil(t, got)
	assert.False(t, got.IsBlocked)
}
