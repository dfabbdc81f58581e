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

var ErrShoppingListNotFound = errors.New("shopping list not found")

const shoppingListColumns = `id, user_id, name, items, created_at`

type ShoppingListService struct {
	db *database.DB
}

func NewShoppingListService(db *database.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

func scanShoppingList(row pgx.Row) (*models.ShoppingList, error) {
	var l models.ShoppingList
	if err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Items, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *ShoppingListService) Create(ctx context.Context, userID uuid.UUID, name string, items []models.IngredientLine) (*models.ShoppingList, error) {
	if items == nil {
		items = []models.IngredientLine{}
	}

	list, err := scanShoppingList(s.db.Pool.QueryRow(ctx, `
		INSERT INTO shopping_lists (user_id, name, items)
		VALUES ($1, $2, $3)
		RETURNING `+shoppingListColumns,
		userID, name, items))
	if err != nil {
		return nil, fmt.Errorf("failed to create shopping list: %w", err)
	}
	return list, nil
}

func (s *ShoppingListService) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	list, err := scanShoppingList(s.db.Pool.QueryRow(ctx, `
		SELECT `+shoppingListColumns+`
		FROM shopping_lists WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShoppingListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return list, nil
}

func (s *ShoppingListService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+shoppingListColumns+`
		FROM shopping_lists WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []models.ShoppingList{}
	for rows.Next() {
		l, err := scanShoppingList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (s *ShoppingListService) Update(ctx context.Context, id uuid.UUID, name *string, items []models.IngredientLine) (UpdateResult, error) {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE shopping_lists
		SET name = COALESCE($1, name), items = $2
		WHERE id = $3
	`, name, items, id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return UpdateResult{}, ErrShoppingListNotFound
	}
	return UpdateResult{Matched: tag.RowsAffected(), Modified: tag.RowsAffected()}, nil
}

func (s *ShoppingListService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrShoppingListNotFound
	}
	return nil
}
