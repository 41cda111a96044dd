package models

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	FirstName       string `json:"first_name" binding:"required,max=50"`
	LastName        string `json:"last_name" binding:"required,max=50"`
	PhoneNumber     string `json:"phone_number" binding:"required,max=20"`
	Address         string `json:"address" binding:"omitempty,max=255"`
	City            string `json:"city" binding:"omitempty,max=100"`
	State           string `json:"state" binding:"omitempty,max=50"`
	DateOfBirth     string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmPasswordResetRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// AuthPayload is returned on successful register/login.
type AuthPayload struct {
	Account Account `json:"account"`
	Refresh string  `json:"refresh"`
	Access  string  `json:"access"`
}

// ExtraSelection is one entry of the extra_items mapping:
// extra id -> {quantity}.
type ExtraSelection struct {
	Quantity int `json:"quantity"`
}

type AddCartItemRequest struct {
	CartCode    string                    `json:"cart_code" binding:"required"`
	DishID      int                       `json:"dish_id" binding:"required"`
	Quantity    *int                      `json:"quantity"`
	Note        string                    `json:"note"`
	OrderOption string                    `json:"orderoption"`
	ExtraItems  map[string]ExtraSelection `json:"extra_items"`
}

type CreateBookingRequest struct {
	FullName        string `json:"full_name" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phone_number" binding:"required,max=20"`
	EventType       string `json:"event_type" binding:"required,oneof=wedding birthday corporate funeral anniversary graduation other"`
	EventDate       string `json:"event_date" binding:"required,datetime=2006-01-02"`
	NumberOfGuests  string `json:"number_of_guests" binding:"required,oneof=under50 50-100 100-200 200-300 300+"`
	VenueLocation   string `json:"venue_location" binding:"required,max=255"`
	SpecialRequests string `json:"special_requests"`
	AdditionalInfo  string `json:"additional_info"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ContactRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Subject     string `json:"subject" binding:"omitempty,max=100"`
	Message     string `json:"message" binding:"required"`
}

type CreateDishRequest struct {
	Name            string `form:"name" binding:"required,max=100"`
	Description     string `form:"description" binding:"required"`
	Price           string `form:"price" binding:"required"`
	CategoryID      int    `form:"category_id" binding:"required"`
	IsAvailable     *bool  `form:"is_available"`
	AllowedExtraIDs []int  `form:"allowed_extras"`
}

type UpdateDishRequest struct {
	Name            string `form:"name"`
	Description     string `form:"description"`
	Price           string `form:"price"`
	CategoryID      int    `form:"category_id"`
	IsAvailable     *bool  `form:"is_available"`
	AllowedExtraIDs []int  `form:"allowed_extras"`
}
