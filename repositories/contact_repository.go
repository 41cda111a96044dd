package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO contacts (name, email, phone_number, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, contact.Name, contact.Email, contact.PhoneNumber, contact.Subject,
		contact.Message, time.Now(),
	).Scan(&contact.ID, &contact.CreatedAt)
}
