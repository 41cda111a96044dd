package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ListByDish(ctx context.Context, dishID int) ([]models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rv.id, rv.dish_id, rv.account_id,
			a.first_name || ' ' || a.last_name,
			rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN accounts a ON rv.account_id = a.id
		WHERE rv.dish_id = $1
		ORDER BY rv.created_at DESC
	`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.DishID, &rv.AccountID, &rv.Reviewer,
			&rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO reviews (dish_id, account_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, review.DishID, review.AccountID, review.Rating, review.Comment, time.Now(),
	).Scan(&review.ID, &review.CreatedAt)
}
