package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/xid"

	"listkeeper/internal/models"
)

const foreignKeyViolation = "23503"

// ItemsByList returns the items of one list in creation order. A list with no
// items yields an empty slice; an unknown list id is a NotFound.
func (s *Store) ItemsByList(ctx context.Context, listID string) ([]models.Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM lists WHERE id = $1)`, listID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check list: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, list_id, description, status FROM items WHERE list_id = $1 ORDER BY created_at, id`,
		listID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.ListID, &it.Description, &it.Status); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// CreateItem inserts an item under an existing list. The foreign key is the
// arbiter: a create racing the parent's delete loses with a NotFound instead
// of leaving an orphan.
func (s *Store) CreateItem(ctx context.Context, listID, description string, status models.Status) (models.Item, error) {
	description = strings.TrimSpace(description)
	if listID == "" || description == "" {
		return models.Item{}, fmt.Errorf("%w: list_id and description are required", ErrValidation)
	}
	if status == "" {
		status = models.StatusPending
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	it := models.Item{
		ID:          xid.New().String(),
		ListID:      listID,
		Description: description,
		Status:      status,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, list_id, description, status) VALUES ($1, $2, $3, $4)`,
		it.ID, it.ListID, it.Description, it.Status)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// UpdateItem replaces an item's description and status.
func (s *Store) UpdateItem(ctx context.Context, id, description string, status models.Status) (models.Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Item{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	it := models.Item{ID: id, Description: description, Status: status}
	err := s.db.QueryRowContext(ctx,
		`UPDATE items SET description = $2, status = $3 WHERE id = $1 RETURNING list_id`,
		id, description, status,
	).Scan(&it.ListID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// ToggleItem flips an item between pending and completed.
func (s *Store) ToggleItem(ctx context.Context, id string) (models.Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var it models.Item
	err := s.db.QueryRowContext(ctx,
		`UPDATE items
		 SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END
		 WHERE id = $1
		 RETURNING id, list_id, description, status`,
		id,
	).Scan(&it.ID, &it.ListID, &it.Description, &it.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("toggle item: %w", err)
	}
	return it, nil
}

// DeleteItem removes one item. The parent list's id comes back so callers can
// invalidate any per-list caches.
func (s *Store) DeleteItem(ctx context.Context, id string) (string, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var listID string
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM items WHERE id = $1 RETURNING list_id`, id).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete item: %w", err)
	}
	return listID, nil
}
