package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"listkeeper/internal/auth"
	"listkeeper/internal/models"
	"listkeeper/internal/store"
)

type listsResponse struct {
	Success bool          `json:"success"`
	Lists   []models.List `json:"lists"`
}

type listResponse struct {
	Success bool        `json:"success"`
	List    models.List `json:"list"`
}

type itemsResponse struct {
	Success bool          `json:"success"`
	Items   []models.Item `json:"items"`
}

type itemResponse struct {
	Success bool        `json:"success"`
	Item    models.Item `json:"item"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeRaw replays an already-encoded JSON envelope, used on cache hits.
func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: false, Message: message})
}

// respondError maps a repository error onto the wire per the taxonomy.
// Unrecognized errors are store failures: logged here, and the client only
// sees a generic message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		fail(w, http.StatusUnauthorized, "not authenticated")
	case errors.Is(err, store.ErrInvalidCredential):
		fail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicateUser):
		fail(w, http.StatusConflict, "username already taken")
	default:
		s.log.Error("%s %s: %v", r.Method, r.URL.Path, err)
		fail(w, http.StatusInternalServerError, "internal server error")
	}
}
