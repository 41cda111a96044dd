package services

import "errors"

var (
	ErrDishNotFound       = errors.New("dish not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrNotEnoughDishes    = errors.New("not enough dishes to feature")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account is not verified")
	ErrAlreadyVerified    = errors.New("email already verified and activated")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
