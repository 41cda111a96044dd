package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, public_id, email, password, first_name, last_name,
	phone_number, address, city, state, role, date_of_birth,
	is_active, is_verified, created_at, updated_at, last_login`

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts
			(email, password, first_name, last_name, phone_number,
			 address, city, state, role, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, public_id, role, is_active, is_verified, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		account.Email,
		account.Password,
		account.FirstName,
		account.LastName,
		account.PhoneNumber,
		account.Address,
		account.City,
		account.State,
		models.RoleCustomer,
		account.DateOfBirth,
		now,
	).Scan(
		&account.ID,
		&account.PublicID,
		&account.Role,
		&account.IsActive,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email = $1", email)
}

func (r *AccountRepository) FindByID(ctx context.Context, id int) (*models.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.PublicID,
		&account.Email,
		&account.Password,
		&account.FirstName,
		&account.LastName,
		&account.PhoneNumber,
		&account.Address,
		&account.City,
		&account.State,
		&account.Role,
		&account.DateOfBirth,
		&account.IsActive,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) MarkVerified(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE accounts SET is_verified = true, updated_at = $1 WHERE email = $2",
		time.Now(), email)
	return err
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE accounts SET password = $1, updated_at = $2 WHERE email = $3",
		passwordHash, time.Now(), email)
	return err
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx,
		"UPDATE accounts SET last_login = $1 WHERE id = $2",
		time.Now(), id)
	return err
}
