package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"listkeeper/internal/auth"
	"listkeeper/internal/models"
)

const uniqueViolation = "23505"

// CreateUser stores a new account. The password digest is produced by the
// caller; this layer never sees the plaintext password.
func (s *Store) CreateUser(ctx context.Context, username, name, passwordHash string) (models.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || name == "" || passwordHash == "" {
		return models.User{}, fmt.Errorf("%w: username and name are required", ErrValidation)
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	u := models.User{Username: username, Name: name}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO user_accounts (username, name, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		username, name, passwordHash,
	).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// VerifyUser checks a login attempt against the stored digest. Unknown names
// and wrong passwords both come back as ErrInvalidCredential, and the
// unknown-name path still burns a digest comparison so the two are not
// distinguishable by timing.
func (s *Store) VerifyUser(ctx context.Context, name, password string) (models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, name, password_hash FROM user_accounts WHERE name = $1`,
		name,
	).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		auth.CompareDummy(password)
		return models.User{}, ErrInvalidCredential
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user: %w", err)
	}

	if !auth.CheckPasswordHash(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredential
	}
	u.PasswordHash = ""
	return u, nil
}
