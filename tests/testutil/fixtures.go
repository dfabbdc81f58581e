package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/recipebox-api/internal/database"
	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/google/uuid"
)

// Fixtures inserts test records directly, bypassing the services.
type Fixtures struct {
	db      *database.DB
	counter int
}

func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser inserts a local account without a password.
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", f.counter),
		Name:     fmt.Sprintf("Test User %d", f.counter),
		Provider: models.ProviderLocal,
	}

	for _, opt := range opts {
		opt(user)
	}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO users (name, email, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, user.Name, user.Email, user.AvatarURL, user.Provider, user.ProviderID).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

type UserOption func(*models.User)

func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

// WithProvider marks the user as signed up through an OAuth provider.
func WithProvider(provider, providerID string) UserOption {
	return func(u *models.User) {
		u.Provider = provider
		u.ProviderID = &providerID
	}
}

// SampleIngredients returns a short ingredient list for recipe fixtures.
func SampleIngredients() []models.IngredientLine {
	return []models.IngredientLine{
		{Quantity: "2", Unit: "cups", ItemName: "water"},
		{Quantity: "1", Unit: "", ItemName: "onion"},
	}
}

func (f *Fixtures) CreateRecipe(t *testing.T, userID uuid.UUID, name string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		UserID:      userID,
		Name:        name,
		Ingredients: SampleIngredients(),
		Directions:  "Simmer.",
	}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO recipes (user_id, name, ingredients, directions)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, recipe.UserID, recipe.Name, recipe.Ingredients, recipe.Directions).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}

	return recipe
}

func (f *Fixtures) CreateRecipeBook(t *testing.T, userID uuid.UUID, name string, entries ...models.RecipeBookEntry) *models.RecipeBook {
	t.Helper()

	if entries == nil {
		entries = []models.RecipeBookEntry{{Name: "Soup", Ingredients: SampleIngredients()}}
	}
	book := &models.RecipeBook{UserID: userID, Name: name, Recipes: entries}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO recipe_books (user_id, name, recipes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, book.UserID, book.Name, book.Recipes).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create recipe book: %v", err)
	}

	return book
}

func (f *Fixtures) CreateShoppingList(t *testing.T, userID uuid.UUID, name string) *models.ShoppingList {
	t.Helper()

	list := &models.ShoppingList{UserID: userID, Name: name, Items: SampleIngredients()}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO shopping_lists (user_id, name, items)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, list.UserID, list.Name, list.Items).Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create shopping list: %v", err)
	}

	return list
}
