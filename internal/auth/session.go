package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"listkeeper/internal/models"
)

// ErrUnauthenticated is returned when a token is missing, unknown or expired.
var ErrUnauthenticated = errors.New("not authenticated")

const sweepInterval = 10 * time.Minute

// Sessions holds the process-wide token→session mapping. Sessions live only
// for the process lifetime; a restart logs everyone out.
type Sessions struct {
	mu       sync.RWMutex
	ttl      time.Duration
	byToken  map[string]*models.Session
	stopOnce sync.Once
	stop     chan struct{}
	now      func() time.Time
}

// NewSessions creates an empty session table with the given sliding TTL and
// starts the background sweep of expired entries.
func NewSessions(ttl time.Duration) *Sessions {
	s := &Sessions{
		ttl:     ttl,
		byToken: make(map[string]*models.Session),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go s.sweep()
	return s
}

// Mint issues a fresh opaque token bound to the user.
func (s *Sessions) Mint(userID int, name string) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.byToken[token] = &models.Session{
		Token:     token,
		UserID:    userID,
		Name:      name,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Validate resolves a token to its session and slides the expiry forward.
// Unknown and expired tokens both come back ErrUnauthenticated.
func (s *Sessions) Validate(token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrUnauthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byToken[token]
	if !ok {
		return models.Session{}, ErrUnauthenticated
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.byToken, token)
		return models.Session{}, ErrUnauthenticated
	}
	sess.ExpiresAt = s.now().Add(s.ttl)
	return *sess, nil
}

// TTL reports the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Revoke invalidates a token. Revoking an absent token is not an error.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}

// Close stops the background sweep.
func (s *Sessions) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Sessions) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for token, sess := range s.byToken {
				if now.After(sess.ExpiresAt) {
					delete(s.byToken, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
