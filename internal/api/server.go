package api

import (
	"context"

	"listkeeper/internal/auth"
	"listkeeper/internal/cache"
	"listkeeper/internal/models"
	"listkeeper/internal/utils"
)

// Store is the repository surface the handlers depend on. *store.Store
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, username, name, passwordHash string) (models.User, error)
	VerifyUser(ctx context.Context, name, password string) (models.User, error)

	Lists(ctx context.Context) ([]models.List, error)
	CreateList(ctx context.Context, title, description string, status models.Status) (models.List, error)
	UpdateList(ctx context.Context, id, title, description string, status models.Status) (models.List, error)
	ToggleList(ctx context.Context, id string) (models.List, error)
	DeleteList(ctx context.Context, id string) error

	ItemsByList(ctx context.Context, listID string) ([]models.Item, error)
	CreateItem(ctx context.Context, listID, description string, status models.Status) (models.Item, error)
	UpdateItem(ctx context.Context, id, description string, status models.Status) (models.Item, error)
	ToggleItem(ctx context.Context, id string) (models.Item, error)
	DeleteItem(ctx context.Context, id string) (string, error)
}

// Server bundles the dependencies the handlers need. Everything is injected;
// the package keeps no globals.
type Server struct {
	store    Store
	sessions *auth.Sessions
	cache    *cache.Cache
	log      *utils.Logger
}

// NewServer wires the handler set. cache may be nil to disable caching.
func NewServer(st Store, sessions *auth.Sessions, c *cache.Cache, logger *utils.Logger) *Server {
	return &Server{store: st, sessions: sessions, cache: c, log: logger}
}
