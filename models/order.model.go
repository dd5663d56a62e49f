package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// Order is an immutable snapshot of a checked-out box.
type Order struct {
	gorm.Model
	UserID           uint                               `gorm:"index;not null" json:"userId"`
	User             *User                              `json:"user,omitempty"`
	OrderNumber      string                             `gorm:"uniqueIndex;not null" json:"orderNumber"`
	RecipeIDs        datatypes.JSONSlice[uint]          `json:"recipeIds"`
	Quantities       datatypes.JSONType[map[string]int] `json:"quantities"`
	Lines            datatypes.JSONSlice[OrderLine]     `json:"lines"`
	People           int                                `json:"people"`
	Subtotal         float64                            `json:"subtotal"`
	Shipping         float64                            `json:"shipping"`
	TotalPrice       float64                            `json:"totalPrice"`
	Status           string                             `gorm:"index;default:'pending'" json:"status"`
	DeliveryDate     *time.Time                         `json:"deliveryDate,omitempty"`
	FirstName        string                             `json:"firstName"`
	LastName         string                             `json:"lastName"`
	Email            string                             `json:"email"`
	Address          string                             `json:"address"`
	City             string                             `json:"city"`
	Postcode         string                             `json:"postcode"`
	PaymentReference string                             `json:"paymentReference,omitempty"`
}

// OrderLine keeps the title and price a recipe had when it was ordered.
type OrderLine struct {
	RecipeID uint    `json:"recipeId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func IsOrderStatus(v string) bool {
	return contains(OrderStatuses, v)
}
