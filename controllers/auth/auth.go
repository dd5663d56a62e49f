package authController

import (
	"context"
	"errors"
	"strings"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/store"
	"homecooked/storefront"
	"homecooked/utils"
	authValidator "homecooked/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const (
	maxFailedLogins = 3
	blockDuration   = 1 * time.Minute
	failureWindow   = 15 * time.Minute
)

// verifyGoogleToken is swapped out in tests.
var verifyGoogleToken = idtoken.Validate

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		logger.Log.Errorf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Provider: models.ProviderEmail,
		Role:     models.RoleUser,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		profile := store.NewProfile(newUser.ID)
		return tx.Create(&profile).Error
	})
	if err != nil {
		logger.Log.Errorf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)
	Track(c, newUser.ID, models.ProviderEmail)

	return issueSession(c, fiber.StatusCreated, "User registered successfully.", newUser, true)
}

// Authenticate checks an email/password pair and applies the lockout rules:
// three wrong passwords block the account for a minute, and a failure older
// than fifteen minutes no longer counts.
func Authenticate(db *gorm.DB, email, password string) (*models.User, int, string) {
	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return nil, fiber.StatusUnauthorized, "Invalid credentials!"
	}

	if user.Provider == models.ProviderGoogle && user.Password == "" {
		return nil, fiber.StatusUnauthorized, "This account signs in with Google."
	}

	now := time.Now()
	if user.IsBlocked && user.BlockedUntil != nil && user.BlockedUntil.After(now) {
		return nil, fiber.StatusUnauthorized, "Your account is temporarily blocked. Try again later."
	}

	if user.LastFailedLogin != nil && now.Sub(*user.LastFailedLogin) > failureWindow {
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		user.FailedLoginAttempts++
		user.LastFailedLogin = &now

		if user.FailedLoginAttempts >= maxFailedLogins {
			unblockTime := now.Add(blockDuration)
			user.IsBlocked = true
			user.BlockedUntil = &unblockTime
			user.FailedLoginAttempts = 0
			logger.Log.Warnf("User %d blocked until %s", user.ID, unblockTime.Format(time.RFC3339))
		}

		if err := db.Save(&user).Error; err != nil {
			logger.Log.Errorf("Error saving failed login: %v", err)
		}
		return nil, fiber.StatusUnauthorized, "Wrong Password"
	}

	user.LastLogin = &now
	user.FailedLoginAttempts = 0
	user.LastFailedLogin = nil
	user.IsBlocked = false
	user.BlockedUntil = nil
	if err := db.Save(&user).Error; err != nil {
		logger.Log.Errorf("Error saving last login time: %v", err)
	}
	return &user, fiber.StatusOK, ""
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, status, message := Authenticate(database.Database.Db, reqData.Email, reqData.Password)
	if user == nil {
		return middleware.JsonResponse(c, status, false, message, nil)
	}

	Track(c, user.ID, models.ProviderEmail)
	return issueSession(c, fiber.StatusOK, "Login successful.", *user, false)
}

func GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGoogleLogin").(*authValidator.GoogleLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if config.AppConfig.GoogleClientID == "" {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Google sign-in is not configured!", nil)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	payload, err := verifyGoogleToken(ctx, reqData.IDToken, config.AppConfig.GoogleClientID)
	if err != nil {
		logger.Log.Warnf("Google token rejected: %v", err)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Google token!", nil)
	}

	email, _ := payload.Claims["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if verified, _ := payload.Claims["email_verified"].(bool); email == "" || !verified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Google account email is not verified!", nil)
	}
	name, _ := payload.Claims["name"].(string)

	db := database.Database.Db
	var user models.User
	isSignUp := false
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		isSignUp = true
		user = models.User{Name: name, Email: email, Provider: models.ProviderGoogle, Role: models.RoleUser}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile := store.NewProfile(user.ID)
			return tx.Create(&profile).Error
		})
		if err != nil {
			logger.Log.Errorf("Error creating Google user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
		}
		utils.SendWelcomeEmail(user.Email, user.Name)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	case user.IsDeleted:
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db.Model(&user).Update("last_login", now).Error; err != nil {
		logger.Log.Errorf("Error saving last login time: %v", err)
	}

	Track(c, user.ID, models.ProviderGoogle)
	message := "Login successful."
	if isSignUp {
		message = "User registered successfully."
	}
	return issueSession(c, fiber.StatusOK, message, user, isSignUp)
}

// Track records where a login came from.
func Track(c *fiber.Ctx, userID uint, provider string) {
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	loginTracking := models.LoginTracking{
		UserID:    userID,
		Provider:  provider,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	logger.Log.Infof("User %d logged in from IP: %s", userID, ip)

	if err := database.Database.Db.Create(&loginTracking).Error; err != nil {
		logger.Log.Errorf("Error saving login tracking details: %v", err)
	}
}

// issueSession answers a successful sign-in with the token and the shopper's
// restored session.
func issueSession(c *fiber.Ctx, status int, message string, user models.User, isSignUp bool) error {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	session, err := store.LoadSession(database.Database.Db, user.ID)
	if err != nil {
		logger.Log.Errorf("Error loading session for user %d: %v", user.ID, err)
		session = storefront.NewSession()
	}
	session.Login(isSignUp)

	return middleware.JsonResponse(c, status, true, message, fiber.Map{
		"user":    user,
		"token":   token,
		"session": session,
	})
}

// Logout revokes the token. The stored box and favorites stay for the next
// sign-in; the returned session is the cleared client state.
func Logout(c *fiber.Ctx) error {
	if err := middleware.RevokeToken(c); err != nil {
		logger.Log.Errorf("Error revoking token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign out!", nil)
	}

	session := storefront.NewSession()
	session.Logout()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed out.", session)
}

func Me(c *fiber.Ctx) error {
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
		session = storefront.NewSession()
		session.LoggedIn = true
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", fiber.Map{
		"user":    user,
		"session": session,
	})
}

func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLoginHistory").(*authValidator.LoginHistoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var loginTracking []models.LoginTracking
	var total int64

	db := database.Database.Db
	if err := db.Where("user_id = ?", userId).
		Order("timestamp DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&loginTracking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}
	db.Model(&models.LoginTracking{}).Where("user_id = ?", userId).Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", fiber.Map{
		"loginTracking": loginTracking,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func ChangePassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Old password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}
