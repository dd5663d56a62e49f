package checkoutValidator

import (
	"strings"

	"homecooked/validators"

	"github.com/gofiber/fiber/v2"
)

// CheckoutRequest is the delivery form. City is optional.
type CheckoutRequest struct {
	FirstName        string `json:"firstName" validate:"required,max=100"`
	LastName         string `json:"lastName" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Address          string `json:"address" validate:"required,max=255"`
	City             string `json:"city" validate:"max=100"`
	Postcode         string `json:"postcode" validate:"required,max=16"`
	DeliveryDate     string `json:"deliveryDate" validate:"omitempty,date"`
	PaymentReference string `json:"paymentReference"`
}

func (r *CheckoutRequest) Normalize() {
	validators.Trim(&r.FirstName, &r.LastName, &r.Email, &r.Address, &r.City, &r.Postcode, &r.DeliveryDate, &r.PaymentReference)
	r.Email = strings.ToLower(r.Email)
	r.Postcode = strings.ToUpper(r.Postcode)
}

func Checkout() fiber.Handler {
	return validators.Body[CheckoutRequest]("validatedCheckout")
}
