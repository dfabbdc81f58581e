package testutil

import (
	"context"
	"time"

	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) userResult(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return m.userResult(m.Called(ctx, name, email, password))
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return m.userResult(m.Called(ctx, email, password))
}

func (m *MockUserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	return m.userResult(m.Called(ctx, info))
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.userResult(m.Called(ctx, id))
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) RotateRefreshToken(ctx context.Context, userID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, oldHash, newHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// MockJWTService mocks the JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenPair(userID uuid.UUID) (*services.TokenPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockJWTService) RefreshExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockRecipeService mocks the RecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, userID uuid.UUID, name string, ingredients []models.IngredientLine, directions string) (*models.Recipe, error) {
	args := m.Called(ctx, userID, name, ingredients, directions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, id uuid.UUID, name *string, ingredients []models.IngredientLine, directions *string) (services.UpdateResult, error) {
	args := m.Called(ctx, id, name, ingredients, directions)
	return args.Get(0).(services.UpdateResult), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeBookService mocks the RecipeBookService
type MockRecipeBookService struct {
	mock.Mock
}

func (m *MockRecipeBookService) Create(ctx context.Context, userID uuid.UUID, name string, recipes []models.RecipeBookEntry) (*models.RecipeBook, error) {
	args := m.Called(ctx, userID, name, recipes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeBook), args.Error(1)
}

func (m *MockRecipeBookService) GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeBook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeBook), args.Error(1)
}

func (m *MockRecipeBookService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeBook), args.Error(1)
}

func (m *MockRecipeBookService) Update(ctx context.Context, id uuid.UUID, name *string, recipes []models.RecipeBookEntry) (services.UpdateResult, error) {
	args := m.Called(ctx, id, name, recipes)
	return args.Get(0).(services.UpdateResult), args.Error(1)
}

func (m *MockRecipeBookService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShoppingListService mocks the ShoppingListService
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) Create(ctx context.Context, userID uuid.UUID, name string, items []models.IngredientLine) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, name, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) Update(ctx context.Context, id uuid.UUID, name *string, items []models.IngredientLine) (services.UpdateResult, error) {
	args := m.Called(ctx, id, name, items)
	return args.Get(0).(services.UpdateResult), args.Error(1)
}

func (m *MockShoppingListService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOAuthProvider mocks an OAuth provider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}

func (m *MockOAuthProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
