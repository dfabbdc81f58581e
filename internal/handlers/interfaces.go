package handlers

import (
	"context"
	"time"

	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	RotateRefreshToken(ctx context.Context, userID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// RecipeServiceInterface defines the methods used by handlers from RecipeService
type RecipeServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, name string, ingredients []models.IngredientLine, directions string) (*models.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, name *string, ingredients []models.IngredientLine, directions *string) (services.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeBookServiceInterface defines the methods used by handlers from RecipeBookService
type RecipeBookServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, name string, recipes []models.RecipeBookEntry) (*models.RecipeBook, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeBook, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeBook, error)
	Update(ctx context.Context, id uuid.UUID, name *string, recipes []models.RecipeBookEntry) (services.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShoppingListServiceInterface defines the methods used by handlers from ShoppingListService
type ShoppingListServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, name string, items []models.IngredientLine) (*models.ShoppingList, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error)
	Update(ctx context.Context, id uuid.UUID, name *string, items []models.IngredientLine) (services.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
