package models

import (
	"fmt"
	"time"
)

// Status is the completion state shared by lists and items.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the two known states.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggle returns the complement of s.
func (s Status) Toggle() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

// ParseStatus converts a wire string into a Status, defaulting empty input to
// pending so callers can omit the field on create.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusPending, nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

type List struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Item struct {
	ID          string `json:"id"`
	ListID      string `json:"list_id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Session binds an opaque token to a user for its lifetime.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}
