package api

import (
	"encoding/json"
	"net/http"

	"listkeeper/internal/auth"
)

// RegisterRequest is the payload for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// LoginRequest is the payload for POST /api/login. Login is by display name,
// which is what the client sends.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Success bool   `json:"success"`
	Session bool   `json:"session"`
	UserID  int    `json:"userId,omitempty"`
	Name    string `json:"name,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		fail(w, http.StatusBadRequest, "password is required")
		return
	}
	if req.Password != req.Confirm {
		fail(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if _, err := s.store.CreateUser(r.Context(), req.Username, req.Name, hash); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Registered successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "name and password are required")
		return
	}

	user, err := s.store.VerifyUser(r.Context(), req.Name, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token := s.sessions.Mint(user.ID, user.Name)
	setSessionCookie(w, r, token, s.sessions.TTL())
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Login successful"})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Validate(cookieToken(r))
	if err != nil {
		writeJSON(w, http.StatusOK, sessionResponse{Success: true, Session: false})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Success: true,
		Session: true,
		UserID:  sess.UserID,
		Name:    sess.Name,
	})
}

// handleLogout invalidates whatever token the request carries. Absent or
// unknown tokens still get a success; logout is idempotent.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := cookieToken(r); token != "" {
		s.sessions.Revoke(token)
	}
	clearSessionCookie(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
