// Package pricing holds the storefront's money rules: household scaling,
// checkout quotes, weekly plan prices and payment-provider plan codes.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultShippingFee  = 4.95
	DefaultPricePerMeal = 8.50
	DefaultPlanCode     = "PLN_2people3meals"
)

var ErrUnsupportedPlan = errors.New("unsupported plan")

// Multiplier scales a two-person recipe price to a household of people.
func Multiplier(people int) float64 {
	return float64(people) / 2
}

// Quote is the checkout breakdown for a box.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// NewQuote adds the shipping fee to subtotal. Amounts are rounded to pence.
func NewQuote(subtotal, shipping float64) Quote {
	subtotal = Round(subtotal)
	shipping = Round(shipping)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    Round(subtotal + shipping),
	}
}

// WeeklyPrice is the subscription price of a plan per week.
func WeeklyPrice(people, meals int, pricePerMeal float64) float64 {
	return Round(float64(people*meals) * pricePerMeal)
}

type planKey struct {
	people int
	meals  int
}

var planCodes = map[planKey]string{
	{2, 2}: "PLN_2people2meals",
	{2, 3}: "PLN_2people3meals",
	{2, 4}: "PLN_2people4meals",
	{2, 5}: "PLN_2people5meals",
	{4, 2}: "PLN_4people2meals",
	{4, 3}: "PLN_4people3meals",
	{4, 4}: "PLN_4people4meals",
	{4, 5}: "PLN_4people5meals",
}

// LookupPlanCode returns the provider plan code for (people, meals).
func LookupPlanCode(people, meals int) (string, error) {
	code, ok := planCodes[planKey{people, meals}]
	if !ok {
		return "", fmt.Errorf("%w: %d people, %d meals", ErrUnsupportedPlan, people, meals)
	}
	return code, nil
}

// PlanCode is LookupPlanCode falling back to DefaultPlanCode.
func PlanCode(people, meals int) string {
	code, err := LookupPlanCode(people, meals)
	if err != nil {
		return DefaultPlanCode
	}
	return code
}

// ValidPlan reports whether the pair has a provider plan.
func ValidPlan(people, meals int) bool {
	_, ok := planCodes[planKey{people, meals}]
	return ok
}

// ToPence converts an amount to the provider's smallest currency unit.
func ToPence(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromPence(pence int64) float64 {
	return float64(pence) / 100
}

func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewReference builds a payment reference of the form
// <prefix>_<unix millis>_<9 base36 chars>.
func NewReference(prefix string) string {
	if prefix == "" {
		prefix = "pay"
	}
	id := uuid.New()
	var suffix strings.Builder
	for i := 0; i < 9; i++ {
		suffix.WriteByte(base36[int(id[i])%len(base36)])
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix.String())
}

// NewOrderNumber builds a human-facing order number.
func NewOrderNumber(t time.Time) string {
	return fmt.Sprintf("HC-%s-%s", t.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
