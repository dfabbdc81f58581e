package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dimitrije/recipebox-api/internal/database"
	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, avatar_url, provider, provider_id, created_at, updated_at`

type UserService struct {
	db     *database.DB
	hasher *PasswordHasher
}

func NewUserService(db *database.DB, hasher *PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AvatarURL,
		&u.Provider, &u.ProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates a local account with a hashed password.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, provider)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		strings.TrimSpace(name), normalizeEmail(email), hash, models.ProviderLocal))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the local account matching email and password.
// Unknown emails, OAuth-only accounts and wrong passwords all yield
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Matches(*user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE provider = $1 AND provider_id = $2
	`, info.Provider, info.ID))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = scanUser(s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		info.Name, normalizeEmail(info.Email), nullableString(info.AvatarURL), info.Provider, info.ID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE id = $1
	`, id))
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE email = $1
	`, normalizeEmail(email)))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
