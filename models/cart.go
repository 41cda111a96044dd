package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

// OrderTypes enumerates the recognized order fulfillment modes.
var OrderTypes = map[string]bool{
	OrderTypePickup:   true,
	OrderTypeDelivery: true,
}

type Cart struct {
	ID        int       `json:"id"`
	CartCode  string    `json:"cart_code"`
	AccountID *int      `json:"account_id,omitempty"`
	OrderType string    `json:"order_type"`
	IsActive  bool      `json:"is_active"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID                 int             `json:"id"`
	CartID             int             `json:"cart_id"`
	DishID             int             `json:"dish_id"`
	Quantity           int             `json:"quantity"`
	SpecialInstruction string          `json:"special_instruction"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type CartItemExtra struct {
	ID          int    `json:"id"`
	CartItemID  int    `json:"-"`
	ExtraItemID int    `json:"extra_id"`
	ExtraName   string `json:"extra_name"`
	Quantity    int    `json:"quantity"`
}

// CartItemDetail is the serialized cart item returned by add_item and
// the cart snapshot: the item joined with its dish, cart code and extras.
type CartItemDetail struct {
	ID                 int             `json:"id"`
	DishID             int             `json:"dish_id"`
	CartCode           string          `json:"cart_code"`
	DishName           string          `json:"dish_name"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	ExtraItems         []CartItemExtra `json:"extra_items"`
	SpecialInstruction string          `json:"special_instruction"`
	DeliveryOption     string          `json:"delivery_option"`
}

type CartSnapshot struct {
	ID        int              `json:"id"`
	CartCode  string           `json:"cart_code"`
	OrderType string           `json:"order_type"`
	Paid      bool             `json:"paid"`
	CreatedAt time.Time        `json:"created_at"`
	Items     []CartItemDetail `json:"items"`
}

type CartStat struct {
	ID            int    `json:"id"`
	CartCode      string `json:"cart_code"`
	NumberOfItems int    `json:"number_of_items"`
}
