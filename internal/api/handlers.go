package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"listkeeper/internal/cache"
	"listkeeper/internal/models"
)

// CreateListRequest is the payload for POST /api/lists.
type CreateListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateListRequest is the payload for PUT /api/lists/{id}. Updates are a
// full replace; every field must be sent.
type UpdateListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AddItemRequest is the payload for POST /add-item.
type AddItemRequest struct {
	ListID      string `json:"list_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// EditItemRequest is the payload for PUT /edit-item/{id}.
type EditItemRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	if body, ok := s.cache.Get(r.Context(), cache.ListsKey); ok {
		writeRaw(w, http.StatusOK, body)
		return
	}

	lists, err := s.store.Lists(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body, err := json.Marshal(listsResponse{Success: true, Lists: lists})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Set(r.Context(), cache.ListsKey, body)
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.store.CreateList(r.Context(), req.Title, req.Description, status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ListsKey)
	writeJSON(w, http.StatusCreated, listResponse{Success: true, List: list})
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		fail(w, http.StatusBadRequest, "status is required")
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.store.UpdateList(r.Context(), id, req.Title, req.Description, status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ListsKey)
	writeJSON(w, http.StatusOK, listResponse{Success: true, List: list})
}

func (s *Server) handleToggleList(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	list, err := s.store.ToggleList(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ListsKey)
	writeJSON(w, http.StatusOK, listResponse{Success: true, List: list})
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteList(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	if sess, ok := sessionFrom(r); ok {
		s.log.Info("list %s deleted by user %d", id, sess.UserID)
	}
	s.cache.Invalidate(r.Context(), cache.ListsKey, cache.ItemsKey(id))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleItemsByList(w http.ResponseWriter, r *http.Request) {
	listID := mux.Vars(r)["id"]
	key := cache.ItemsKey(listID)
	if body, ok := s.cache.Get(r.Context(), key); ok {
		writeRaw(w, http.StatusOK, body)
		return
	}

	items, err := s.store.ItemsByList(r.Context(), listID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body, err := json.Marshal(itemsResponse{Success: true, Items: items})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Set(r.Context(), key, body)
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := s.store.CreateItem(r.Context(), req.ListID, req.Description, status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ItemsKey(item.ListID))
	writeJSON(w, http.StatusCreated, itemResponse{Success: true, Item: item})
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req EditItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		fail(w, http.StatusBadRequest, "status is required")
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := s.store.UpdateItem(r.Context(), id, req.Description, status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ItemsKey(item.ListID))
	writeJSON(w, http.StatusOK, itemResponse{Success: true, Item: item})
}

func (s *Server) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := s.store.ToggleItem(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ItemsKey(item.ListID))
	writeJSON(w, http.StatusOK, itemResponse{Success: true, Item: item})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	listID, err := s.store.DeleteItem(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.cache.Invalidate(r.Context(), cache.ItemsKey(listID))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
