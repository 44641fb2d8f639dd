package api

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"listkeeper/internal/auth"
	"listkeeper/internal/models"
	"listkeeper/internal/store"
)

// fakeStore implements Store in memory with the same error contract as the
// Postgres-backed one, so handler tests run without a database.
type fakeStore struct {
	mu     sync.Mutex
	nextID int

	users  map[string]models.User // keyed by display name
	lists  map[string]models.List
	items  map[string]models.Item
	serial int // creation order for lists and items
	order  map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[string]models.User),
		lists: make(map[string]models.List),
		items: make(map[string]models.Item),
		order: make(map[string]int),
	}
}

func (f *fakeStore) nextSerial() int {
	f.serial++
	return f.serial
}

func (f *fakeStore) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%04d", prefix, f.nextID)
}

func (f *fakeStore) CreateUser(ctx context.Context, username, name, passwordHash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || name == "" || passwordHash == "" {
		return models.User{}, fmt.Errorf("%w: username and name are required", store.ErrValidation)
	}
	for _, u := range f.users {
		if u.Username == username {
			return models.User{}, store.ErrDuplicateUser
		}
	}
	u := models.User{ID: len(f.users) + 1, Username: username, Name: name, PasswordHash: passwordHash}
	f.users[name] = u
	return models.User{ID: u.ID, Username: username, Name: name}, nil
}

func (f *fakeStore) VerifyUser(ctx context.Context, name, password string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[name]
	if !ok || !auth.CheckPasswordHash(password, u.PasswordHash) {
		return models.User{}, store.ErrInvalidCredential
	}
	u.PasswordHash = ""
	return u, nil
}

func (f *fakeStore) Lists(ctx context.Context) ([]models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.List{}
	for _, l := range f.lists {
		out = append(out, l)
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if f.order[out[j].ID] > f.order[out[i].ID] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeStore) CreateList(ctx context.Context, title, description string, status models.Status) (models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, fmt.Errorf("%w: title is required", store.ErrValidation)
	}
	if status == "" {
		status = models.StatusPending
	}
	l := models.List{
		ID:          f.newID("list"),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	f.lists[l.ID] = l
	f.order[l.ID] = f.nextSerial()
	return l, nil
}

func (f *fakeStore) UpdateList(ctx context.Context, id, title, description string, status models.Status) (models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, fmt.Errorf("%w: title is required", store.ErrValidation)
	}
	l, ok := f.lists[id]
	if !ok {
		return models.List{}, store.ErrNotFound
	}
	l.Title, l.Description, l.Status = title, description, status
	f.lists[id] = l
	return l, nil
}

func (f *fakeStore) ToggleList(ctx context.Context, id string) (models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lists[id]
	if !ok {
		return models.List{}, store.ErrNotFound
	}
	l.Status = l.Status.Toggle()
	f.lists[id] = l
	return l, nil
}

func (f *fakeStore) DeleteList(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.lists[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.lists, id)
	for itemID, it := range f.items {
		if it.ListID == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeStore) ItemsByList(ctx context.Context, listID string) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.lists[listID]; !ok {
		return nil, store.ErrNotFound
	}
	out := []models.Item{}
	for _, it := range f.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	// creation order
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if f.order[out[j].ID] < f.order[out[i].ID] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeStore) CreateItem(ctx context.Context, listID, description string, status models.Status) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	description = strings.TrimSpace(description)
	if listID == "" || description == "" {
		return models.Item{}, fmt.Errorf("%w: list_id and description are required", store.ErrValidation)
	}
	if _, ok := f.lists[listID]; !ok {
		return models.Item{}, store.ErrNotFound
	}
	if status == "" {
		status = models.StatusPending
	}
	it := models.Item{
		ID:          f.newID("item"),
		ListID:      listID,
		Description: description,
		Status:      status,
	}
	f.items[it.ID] = it
	f.order[it.ID] = f.nextSerial()
	return it, nil
}

func (f *fakeStore) UpdateItem(ctx context.Context, id, description string, status models.Status) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Item{}, fmt.Errorf("%w: description is required", store.ErrValidation)
	}
	it, ok := f.items[id]
	if !ok {
		return models.Item{}, store.ErrNotFound
	}
	it.Description, it.Status = description, status
	f.items[id] = it
	return it, nil
}

func (f *fakeStore) ToggleItem(ctx context.Context, id string) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return models.Item{}, store.ErrNotFound
	}
	it.Status = it.Status.Toggle()
	f.items[id] = it
	return it, nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return "", store.ErrNotFound
	}
	delete(f.items, id)
	return it.ListID, nil
}
