package payments

import (
	"time"

	"homecooked/models"

	"gorm.io/gorm"
)

// SubscriptionCodes are returned by the widget after a plan is paid.
type SubscriptionCodes struct {
	Reference         string `json:"reference"`
	SubscriptionCode  string `json:"subscriptionCode"`
	CustomerCode      string `json:"customerCode"`
	AuthorizationCode string `json:"authorizationCode"`
}

// ConfirmSubscription stores the provider codes on the user's profile and
// marks the subscription active.
func ConfirmSubscription(db *gorm.DB, userID uint, codes SubscriptionCodes, at time.Time) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"subscription_status":     models.SubscriptionActive,
		"subscription_code":       codes.SubscriptionCode,
		"customer_code":           codes.CustomerCode,
		"authorization_code":      codes.AuthorizationCode,
		"subscription_reference":  codes.Reference,
		"subscription_started_at": at,
	}
	if err := db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := db.First(&profile, profile.ID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ReferenceUsed reports whether a payment reference already backs a
// subscription or an order.
func ReferenceUsed(db *gorm.DB, reference string) (bool, error) {
	var profiles, orders int64
	if err := db.Model(&models.Profile{}).Where("subscription_reference = ?", reference).Count(&profiles).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Order{}).Where("payment_reference = ?", reference).Count(&orders).Error; err != nil {
		return false, err
	}
	return profiles+orders > 0, nil
}
