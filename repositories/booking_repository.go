package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings
			(account_id, full_name, email, phone_number, event_type, event_date,
			 number_of_guests, venue_location, special_requests, additional_info, date_submitted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, booking_id, date_submitted, is_pending, is_confirmed, is_declined
	`
	return r.db.QueryRow(ctx, query,
		booking.AccountID,
		booking.FullName,
		booking.Email,
		booking.PhoneNumber,
		booking.EventType,
		booking.EventDate,
		booking.NumberOfGuests,
		booking.VenueLocation,
		booking.SpecialRequests,
		booking.AdditionalInfo,
		time.Now(),
	).Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.DateSubmitted,
		&booking.IsPending,
		&booking.IsConfirmed,
		&booking.IsDeclined,
	)
}
