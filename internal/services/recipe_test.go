package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimitrije/recipebox-api/internal/database"
	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeRowColumns = []string{"id", "user_id", "name", "ingredients", "directions", "created_at"}

func setupRecipeService(t *testing.T) (*RecipeService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewRecipeService(db), mock
}

func soupIngredients() []models.IngredientLine {
	return []models.IngredientLine{
		{Quantity: "2", Unit: "cups", ItemName: "water"},
		{Quantity: "1", Unit: "", ItemName: "onion"},
	}
}

func TestRecipeService_Create(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()
	ingredients := soupIngredients()
	now := time.Now()

	rows := pgxmock.NewRows(recipeRowColumns).
		AddRow(recipeID, userID, "Soup", ingredients, "Boil.", now)

	mock.ExpectQuery(`INSERT INTO recipes`).
		WithArgs(userID, "Soup", ingredients, "Boil.").
		WillReturnRows(rows)

	recipe, err := svc.Create(ctx, userID, "Soup", ingredients, "Boil.")

	require.NoError(t, err)
	assert.Equal(t, recipeID, recipe.ID)
	assert.Equal(t, userID, recipe.UserID)
	assert.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "water", recipe.Ingredients[0].ItemName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_Create_DatabaseError(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`INSERT INTO recipes`).
		WithArgs(userID, "Soup", pgxmock.AnyArg(), "").
		WillReturnError(errors.New("connection refused"))

	recipe, err := svc.Create(ctx, userID, "Soup", soupIngredients(), "")

	assert.Error(t, err)
	assert.Nil(t, recipe)
	assert.Contains(t, err.Error(), "failed to create recipe")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_GetByID(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()
	userID := uuid.New()

	rows := pgxmock.NewRows(recipeRowColumns).
		AddRow(recipeID, userID, "Soup", soupIngredients(), "Boil.", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE id = \$1`).
		WithArgs(recipeID).
		WillReturnRows(rows)

	recipe, err := svc.GetByID(ctx, recipeID)

	require.NoError(t, err)
	assert.Equal(t, recipeID, recipe.ID)
	assert.Equal(t, "Soup", recipe.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE id = \$1`).
		WithArgs(recipeID).
		WillReturnError(pgx.ErrNoRows)

	recipe, err := svc.GetByID(ctx, recipeID)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Nil(t, recipe)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_ListByUser(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(recipeRowColumns).
		AddRow(uuid.New(), userID, "Stew", soupIngredients(), "", now).
		AddRow(uuid.New(), userID, "Soup", soupIngredients(), "", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	recipes, err := svc.ListByUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Stew", recipes[0].Name)
	assert.Equal(t, "Soup", recipes[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_ListByUser_Empty(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(recipeRowColumns))

	recipes, err := svc.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_Update(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()
	name := "Soup v2"
	ingredients := soupIngredients()

	mock.ExpectExec(`UPDATE recipes`).
		WithArgs(&name, ingredients, (*string)(nil), recipeID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	result, err := svc.Update(ctx, recipeID, &name, ingredients, nil)

	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Matched: 1, Modified: 1}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()

	mock.ExpectExec(`UPDATE recipes`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), recipeID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := svc.Update(ctx, recipeID, nil, soupIngredients(), nil)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_Delete(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(recipeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(ctx, recipeID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeService_Delete_NotFound(t *testing.T) {
	svc, mock := setupRecipeService(t)
	ctx := context.Background()
	recipeID := uuid.New()

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(recipeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Delete(ctx, recipeID)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
