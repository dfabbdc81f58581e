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

var ErrRecipeBookNotFound = errors.New("recipe book not found")

const recipeBookColumns = `id, user_id, name, recipes, created_at`

type RecipeBookService struct {
	db *database.DB
}

func NewRecipeBookService(db *database.DB) *RecipeBookService {
	return &RecipeBookService{db: db}
}

func scanRecipeBook(row pgx.Row) (*models.RecipeBook, error) {
	var b models.RecipeBook
	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Recipes, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *RecipeBookService) Create(ctx context.Context, userID uuid.UUID, name string, recipes []models.RecipeBookEntry) (*models.RecipeBook, error) {
	if recipes == nil {
		recipes = []models.RecipeBookEntry{}
	}

	book, err := scanRecipeBook(s.db.Pool.QueryRow(ctx, `
		INSERT INTO recipe_books (user_id, name, recipes)
		VALUES ($1, $2, $3)
		RETURNING `+recipeBookColumns,
		userID, name, recipes))
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe book: %w", err)
	}
	return book, nil
}

func (s *RecipeBookService) GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeBook, error) {
	book, err := scanRecipeBook(s.db.Pool.QueryRow(ctx, `
		SELECT `+recipeBookColumns+`
		FROM recipe_books WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecipeBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe book: %w", err)
	}
	return book, nil
}

func (s *RecipeBookService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeBook, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+recipeBookColumns+`
		FROM recipe_books WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe books: %w", err)
	}
	defer rows.Close()

	books := []models.RecipeBook{}
	for rows.Next() {
		b, err := scanRecipeBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

func (s *RecipeBookService) Update(ctx context.Context, id uuid.UUID, name *string, recipes []models.RecipeBookEntry) (UpdateResult, error) {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE recipe_books
		SET name = COALESCE($1, name), recipes = $2
		WHERE id = $3
	`, name, recipes, id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update recipe book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return UpdateResult{}, ErrRecipeBookNotFound
	}
	return UpdateResult{Matched: tag.RowsAffected(), Modified: tag.RowsAffected()}, nil
}

func (s *RecipeBookService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM recipe_books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeBookNotFound
	}
	return nil
}
