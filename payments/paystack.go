// Package payments prepares hosted-widget payloads for Paystack and verifies
// completed transactions against its API.
package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"homecooked/models"
	"homecooked/pricing"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotConfigured        = errors.New("payment provider is not configured")
	ErrPaymentNotSuccessful = errors.New("payment was not successful")
)

// Settings are the provider values a widget payload needs.
type Settings struct {
	PublicKey    string
	Currency     string
	PricePerMeal float64
}

// Checkout is handed to the client-side widget as-is.
type Checkout struct {
	Reference string         `json:"reference"`
	Email     string         `json:"email"`
	Amount    int64          `json:"amount"`
	Currency  string         `json:"currency"`
	Plan      string         `json:"plan,omitempty"`
	PublicKey string         `json:"publicKey"`
	Metadata  map[string]any `json:"metadata"`
}

// InitSubscription builds the widget payload for a recurring plan.
func InitSubscription(s Settings, user models.User, profile models.Profile) Checkout {
	weekly := pricing.WeeklyPrice(profile.People, profile.RecipesPerWeek, s.PricePerMeal)
	return Checkout{
		Reference: pricing.NewReference("sub"),
		Email:     user.Email,
		Amount:    pricing.ToPence(weekly),
		Currency:  s.Currency,
		Plan:      pricing.PlanCode(profile.People, profile.RecipesPerWeek),
		PublicKey: s.PublicKey,
		Metadata: map[string]any{
			"userId":         user.ID,
			"people":         profile.People,
			"recipesPerWeek": profile.RecipesPerWeek,
			"skillLevel":     profile.SkillLevel,
		},
	}
}

// InitPayment builds the widget payload for a one-off box purchase.
func InitPayment(s Settings, user models.User, total float64) Checkout {
	return Checkout{
		Reference: pricing.NewReference("order"),
		Email:     user.Email,
		Amount:    pricing.ToPence(total),
		Currency:  s.Currency,
		PublicKey: s.PublicKey,
		Metadata: map[string]any{
			"userId": user.ID,
		},
	}
}

// Transaction is the subset of a verified Paystack transaction we use.
type Transaction struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Customer  struct {
		CustomerCode string `json:"customer_code"`
		Email        string `json:"email"`
	} `json:"customer"`
	Authorization struct {
		AuthorizationCode string `json:"authorization_code"`
	} `json:"authorization"`
}

func (t *Transaction) Successful() bool {
	return t.Status == "success"
}

type verifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

// Client talks to the Paystack REST API with the secret key.
type Client struct {
	http      *resty.Client
	secretKey string
}

func NewClient(baseURL, secretKey string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: client, secretKey: secretKey}
}

// Enabled reports whether verification can be performed.
func (c *Client) Enabled() bool {
	return c != nil && c.secretKey != ""
}

// Verify looks up a transaction by reference and fails unless it succeeded.
func (c *Client) Verify(ctx context.Context, reference string) (*Transaction, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	var body verifyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.secretKey).
		SetPathParam("reference", reference).
		SetResult(&body).
		Get("/transaction/verify/{reference}")
	if err != nil {
		return nil, fmt.Errorf("paystack verify: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || !body.Status {
		return nil, fmt.Errorf("paystack verify: status %d: %s", resp.StatusCode(), body.Message)
	}
	if !body.Data.Successful() {
		return &body.Data, fmt.Errorf("%w: %s", ErrPaymentNotSuccessful, body.Data.Status)
	}
	return &body.Data, nil
}
