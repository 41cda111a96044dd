package services

import (
	"context"
	"errors"
	"log"
	"time"

	"catering-api/models"
	"catering-api/utils"

	"github.com/jackc/pgx/v5"
)

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id int) (*models.Account, error)
	MarkVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int) error
}

type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
}

// TokenBlacklist records revoked refresh token ids until they would have
// expired anyway.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) bool
}

type AuthService struct {
	accounts      AccountStore
	mailer        Mailer
	signer        *utils.TimestampSigner
	blacklist     TokenBlacklist
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	tokenMaxAge   time.Duration
}

type AuthConfig struct {
	JWTSecret        string
	JWTAccessExpiry  string
	JWTRefreshExpiry string
	TokenMaxAge      int
}

func NewAuthService(accounts AccountStore, mailer Mailer, signer *utils.TimestampSigner, blacklist TokenBlacklist, cfg AuthConfig) *AuthService {
	accessExpiry, err := time.ParseDuration(cfg.JWTAccessExpiry)
	if err != nil {
		accessExpiry = time.Hour
	}
	refreshExpiry, err := time.ParseDuration(cfg.JWTRefreshExpiry)
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	return &AuthService{
		accounts:      accounts,
		mailer:        mailer,
		signer:        signer,
		blacklist:     blacklist,
		jwtSecret:     cfg.JWTSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		tokenMaxAge:   time.Duration(cfg.TokenMaxAge) * time.Second,
	}
}

// Register creates an unverified account, emails a verification token
// and issues a JWT pair. Password/confirm match is enforced at binding.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthPayload, error) {
	existing, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:       req.Email,
		Password:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
	}
	if req.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			account.DateOfBirth = &dob
		}
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	token := s.signer.Sign(account.Email)
	if err := s.mailer.SendVerificationEmail(account.Email, token); err != nil {
		// Registration stands; the token can be re-sent.
		log.Printf("Failed to send verification email to %s: %v", account.Email, err)
	}

	return s.issueTokens(account)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthPayload, error) {
	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(account.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !account.IsVerified {
		return nil, ErrNotVerified
	}

	if err := s.accounts.UpdateLastLogin(ctx, account.ID); err != nil {
		log.Printf("Failed to update last login for %s: %v", account.Email, err)
	}

	return s.issueTokens(account)
}

func (s *AuthService) issueTokens(account *models.Account) (*models.AuthPayload, error) {
	access, err := utils.GenerateAccessToken(s.jwtSecret, account.ID, account.Email, account.Role, s.accessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, _, err := utils.GenerateRefreshToken(s.jwtSecret, account.ID, account.Email, account.Role, s.refreshExpiry)
	if err != nil {
		return nil, err
	}
	return &models.AuthPayload{Account: *account, Access: access, Refresh: refresh}, nil
}

// VerifyEmail marks the account behind a valid token as verified. The
// boolean reports whether it was already verified (no state change).
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (bool, error) {
	email, err := s.signer.Unsign(token, s.tokenMaxAge)
	if err != nil {
		return false, ErrInvalidToken
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrAccountNotFound
		}
		return false, err
	}
	if account.IsVerified {
		return true, nil
	}

	if err := s.accounts.MarkVerified(ctx, email); err != nil {
		return false, err
	}
	log.Printf("Account %s has been verified", email)
	return false, nil
}

func (s *AuthService) RegenerateToken(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}
	if account.IsVerified {
		return ErrAlreadyVerified
	}

	return s.mailer.SendVerificationEmail(email, s.signer.Sign(email))
}

// Refresh exchanges a valid, non-revoked refresh token for a new access
// token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateToken(s.jwtSecret, refreshToken)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		return "", ErrInvalidToken
	}
	if s.blacklist.Contains(ctx, claims.ID) {
		return "", ErrInvalidToken
	}

	return utils.GenerateAccessToken(s.jwtSecret, claims.AccountID, claims.Email, claims.Role, s.accessExpiry)
}

// Logout revokes the refresh token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.ValidateToken(s.jwtSecret, refreshToken)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Add(ctx, claims.ID, ttl)
}

// RequestPasswordReset emails a reset token when the account exists and
// is verified. An unknown email is not an error so the endpoint cannot
// be used to enumerate accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Password reset requested for unknown email %s", email)
			return nil
		}
		return err
	}
	if !account.IsVerified {
		return ErrNotVerified
	}

	if err := s.mailer.SendPasswordResetEmail(email, s.signer.Sign(email)); err != nil {
		return err
	}
	log.Printf("Password reset email sent to %s", email)
	return nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	email, err := s.signer.Unsign(token, s.tokenMaxAge)
	if err != nil {
		return ErrInvalidToken
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}
	log.Printf("Password reset successful for %s", email)
	return nil
}
