package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

type ExtraCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ExtraItem struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	ExtraCategoryID int             `json:"extra_category_id"`
	IsAvailable     bool            `json:"is_available"`
}

type Dish struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	CategoryID  int             `json:"category_id"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExtraCategoryWithItems is an extra category expanded with its
// available items, as embedded in the dish detail payload.
type ExtraCategoryWithItems struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Extras []ExtraItem `json:"extras"`
}

type DishDetail struct {
	Dish
	CategoryName  string                   `json:"category_name"`
	CategorySlug  string                   `json:"category_slug"`
	AllowedExtras []ExtraCategoryWithItems `json:"allowed_extras"`
}
