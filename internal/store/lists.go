package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/xid"

	"listkeeper/internal/models"
)

// Lists returns every list, newest first.
func (s *Store) Lists(ctx context.Context) ([]models.List, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, status, created_at FROM lists ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select lists: %w", err)
	}
	defer rows.Close()

	lists := []models.List{}
	for rows.Next() {
		var l models.List
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}
	return lists, nil
}

// CreateList inserts a new list. The title must be non-empty after trimming.
func (s *Store) CreateList(ctx context.Context, title, description string, status models.Status) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if status == "" {
		status = models.StatusPending
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	l := models.List{
		ID:          xid.New().String(),
		Title:       title,
		Description: description,
		Status:      status,
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO lists (id, title, description, status) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		l.ID, l.Title, l.Description, l.Status,
	).Scan(&l.CreatedAt)
	if err != nil {
		return models.List{}, fmt.Errorf("insert list: %w", err)
	}
	return l, nil
}

// UpdateList replaces the mutable fields of a list. This is a full replace,
// not a patch; callers resend unchanged fields.
func (s *Store) UpdateList(ctx context.Context, id, title, description string, status models.Status) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	l := models.List{ID: id, Title: title, Description: description, Status: status}
	err := s.db.QueryRowContext(ctx,
		`UPDATE lists SET title = $2, description = $3, status = $4 WHERE id = $1 RETURNING created_at`,
		id, title, description, status,
	).Scan(&l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, ErrNotFound
	}
	if err != nil {
		return models.List{}, fmt.Errorf("update list: %w", err)
	}
	return l, nil
}

// ToggleList flips a list between pending and completed in one statement, so
// two racing toggles cannot observe a half-written status.
func (s *Store) ToggleList(ctx context.Context, id string) (models.List, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var l models.List
	err := s.db.QueryRowContext(ctx,
		`UPDATE lists
		 SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END
		 WHERE id = $1
		 RETURNING id, title, description, status, created_at`,
		id,
	).Scan(&l.ID, &l.Title, &l.Description, &l.Status, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, ErrNotFound
	}
	if err != nil {
		return models.List{}, fmt.Errorf("toggle list: %w", err)
	}
	return l, nil
}

// DeleteList removes a list and all of its items in one transaction. If the
// list is already gone the whole operation is a NotFound, and if the item
// cleanup fails the list survives.
func (s *Store) DeleteList(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete list: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE list_id = $1`, id); err != nil {
		return fmt.Errorf("delete list items: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete list: %w", err)
	}
	return nil
}
