package authValidator

import (
	"strings"

	"homecooked/validators"

	"github.com/gofiber/fiber/v2"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *SignupRequest) Normalize() {
	validators.Trim(&r.Name, &r.Email)
	r.Email = strings.ToLower(r.Email)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type LoginHistoryRequest struct {
	validators.Pagination
}

func (r *LoginHistoryRequest) Normalize() {
	r.Defaults()
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72,nefield=OldPassword"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return validators.Body[SignupRequest]("validatedUser")
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[LoginRequest]("validatedLogin")
}

func GoogleLogin() fiber.Handler {
	return validators.Body[GoogleLoginRequest]("validatedGoogleLogin")
}

// Login History Validator middleware
func LoginHistoryList() fiber.Handler {
	return validators.Query[LoginHistoryRequest]("validatedLoginHistory")
}

func ChangePassword() fiber.Handler {
	return validators.Body[ChangePasswordRequest]("validatedChangePassword")
}
