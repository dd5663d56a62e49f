package middleware

import (
	"fmt"
	"strings"
	"time"

	"homecooked/config"
	"homecooked/database"
	"homecooked/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"jti":    uuid.NewString(),
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}
	tokenString := authHeader[len("Bearer "):]

	claims, err := parseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	userID, ok := claims["userId"].(float64) // numeric claims decode as float64
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	jti, _ := claims["jti"].(string)

	if jti != "" {
		var revoked int64
		database.Database.Db.Model(&models.RevokedToken{}).Where("token_id = ?", jti).Count(&revoked)
		if revoked > 0 {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Session has been signed out", nil)
		}
	}

	role, _ := claims["role"].(string)
	c.Locals("userId", uint(userID))
	c.Locals("role", role)
	c.Locals("tokenId", jti)
	if exp, ok := claims["exp"].(float64); ok {
		c.Locals("tokenExpiry", time.Unix(int64(exp), 0))
	}

	return c.Next()
}

// RevokeToken blocks the current request's token until it expires.
func RevokeToken(c *fiber.Ctx) error {
	jti, _ := c.Locals("tokenId").(string)
	if jti == "" {
		return nil
	}
	userID, _ := c.Locals("userId").(uint)
	expiry, ok := c.Locals("tokenExpiry").(time.Time)
	if !ok {
		expiry = time.Now().Add(tokenTTL)
	}

	db := database.Database.Db
	// expired revocations are no longer needed
	db.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})

	return db.Create(&models.RevokedToken{TokenID: jti, UserID: userID, ExpiresAt: expiry}).Error
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
