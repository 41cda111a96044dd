package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventTypes maps the accepted event_type values to their labels,
// mirrored by the get-booking-events endpoint.
var BookingEventTypes = [][2]string{
	{"wedding", "Wedding Ceremony"},
	{"birthday", "Birthday Party"},
	{"corporate", "Corporate Event"},
	{"funeral", "Funeral"},
	{"anniversary", "Anniversary"},
	{"graduation", "Graduation"},
	{"other", "Other"},
}

var BookingGuestChoices = [][2]string{
	{"under50", "Under 50"},
	{"50-100", "50 - 100"},
	{"100-200", "100 - 200"},
	{"200-300", "200 - 300"},
	{"300+", "300+"},
}

type Booking struct {
	ID              int       `json:"-"`
	BookingID       uuid.UUID `json:"booking_id"`
	AccountID       *int      `json:"account_id,omitempty"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number"`
	EventType       string    `json:"event_type"`
	EventDate       time.Time `json:"event_date"`
	NumberOfGuests  string    `json:"number_of_guests"`
	VenueLocation   string    `json:"venue_location"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	AdditionalInfo  string    `json:"additional_info,omitempty"`
	DateSubmitted   time.Time `json:"date_submitted"`
	IsPending       bool      `json:"is_pending"`
	IsConfirmed     bool      `json:"is_confirmed"`
	IsDeclined      bool      `json:"is_declined"`
}
