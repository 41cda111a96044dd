package models

import "time"

type Review struct {
	ID        int       `json:"id"`
	DishID    int       `json:"dish_id"`
	AccountID int       `json:"-"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
