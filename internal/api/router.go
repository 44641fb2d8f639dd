package api

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter builds the route table.
func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/api/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/session", s.handleSession).Methods("GET")
	r.HandleFunc("/api/logout", s.handleLogout).Methods("POST")

	r.HandleFunc("/api/lists", s.handleLists).Methods("GET")
	r.HandleFunc("/api/lists", s.requireSession(s.handleCreateList)).Methods("POST")
	r.HandleFunc("/api/lists/{id}", s.requireSession(s.handleUpdateList)).Methods("PUT")
	r.HandleFunc("/api/lists/{id}/toggle", s.requireSession(s.handleToggleList)).Methods("PUT")
	r.HandleFunc("/api/lists/{id}", s.requireSession(s.handleDeleteList)).Methods("DELETE")

	r.HandleFunc("/get-items/{id}", s.handleItemsByList).Methods("GET")
	r.HandleFunc("/add-item", s.requireSession(s.handleAddItem)).Methods("POST")
	r.HandleFunc("/edit-item/{id}", s.requireSession(s.handleEditItem)).Methods("PUT")
	r.HandleFunc("/toggle-item/{id}", s.requireSession(s.handleToggleItem)).Methods("PUT")
	r.HandleFunc("/delete-item/{id}", s.requireSession(s.handleDeleteItem)).Methods("DELETE")

	return r
}

// WithMiddleware wraps the router with access logging and, when origins are
// configured, CORS with credentials so the browser client can send the
// session cookie cross-origin.
func WithMiddleware(router *mux.Router, origins []string, accessLog io.Writer) http.Handler {
	var h http.Handler = router
	h = handlers.LoggingHandler(accessLog, h)
	if len(origins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
			handlers.AllowCredentials(),
		)(h)
	}
	return h
}
