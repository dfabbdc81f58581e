package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/recipebox-api/internal/database"
	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRecipeNotFound = errors.New("recipe not found")

const recipeColumns = `id, user_id, name, ingredients, directions, created_at`

type RecipeService struct {
	db *database.DB
}

func NewRecipeService(db *database.DB) *RecipeService {
	return &RecipeService{db: db}
}

func scanRecipe(row pgx.Row) (*models.Recipe, error) {
	var r models.Recipe
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Ingredients, &r.Directions, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, name string, ingredients []models.IngredientLine, directions string) (*models.Recipe, error) {
	if ingredients == nil {
		ingredients = []models.IngredientLine{}
	}

	recipe, err := scanRecipe(s.db.Pool.QueryRow(ctx, `
		INSERT INTO recipes (user_id, name, ingredients, directions)
		VALUES ($1, $2, $3, $4)
		RETURNING `+recipeColumns,
		userID, name, ingredients, directions))
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := scanRecipe(s.db.Pool.QueryRow(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// ListByUser returns the user's recipes, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	return recipes, rows.Err()
}

// Update rewrites ingredients and, when given, name and directions. Owner,
// id and creation date are never touched.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, name *string, ingredients []models.IngredientLine, directions *string) (UpdateResult, error) {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE recipes
		SET name = COALESCE($1, name), ingredients = $2, directions = COALESCE($3, directions)
		WHERE id = $4
	`, name, ingredients, directions, id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return UpdateResult{}, ErrRecipeNotFound
	}
	return UpdateResult{Matched: tag.RowsAffected(), Modified: tag.RowsAffected()}, nil
}

func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
