package api

import (
	"context"
	"net/http"
	"time"

	"listkeeper/internal/models"
)

// sessionCookie is the name of the HTTP-only cookie carrying the opaque token.
const sessionCookie = "listkeeper_session"

type contextKey string

const sessionKey contextKey = "session"

// requireSession rejects requests without a valid session cookie and stashes
// the resolved session in the request context for the wrapped handler.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.Validate(cookieToken(r))
		if err != nil {
			fail(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx))
	}
}

// sessionFrom retrieves the session stashed by requireSession.
func sessionFrom(r *http.Request) (models.Session, bool) {
	sess, ok := r.Context().Value(sessionKey).(models.Session)
	return sess, ok
}

func cookieToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// setSessionCookie installs the token cookie. The secure flag follows the
// connection, so TLS deployments get secure cookies without extra config.
func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
