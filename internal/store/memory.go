package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"outreach/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps saved sequences in a process-local map. Contents do not
// survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]models.SavedEmail
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{items: make(map[string]models.SavedEmail)}
}

// Save assigns an id and timestamps and stores a copy of the request.
func (s *MemoryStore) Save(_ context.Context, req models.SaveRequest) (*models.SavedEmail, error) {
	saved := newSavedEmail(req)

	s.mu.Lock()
	s.items[saved.ID] = saved
	s.mu.Unlock()

	return &saved, nil
}

// Get returns the saved sequence or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.SavedEmail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// List returns metadata records, newest first, optionally filtered by
// account index (0 means no filter).
func (s *MemoryStore) List(_ context.Context, accountIndex int) ([]models.SavedEmailMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listMetas(s.items, accountIndex), nil
}

// Delete removes the id and reports whether it existed.
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Ping always succeeds for the in-memory backend.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error { return nil }

func newSavedEmail(req models.SaveRequest) models.SavedEmail {
	now := time.Now().UTC()
	emails := make(models.EmailSequence, len(req.Emails))
	copy(emails, req.Emails)

	return models.SavedEmail{
		ID:           uuid.NewString(),
		AccountIndex: req.AccountIndex,
		AccountName:  req.AccountName,
		ContactID:    req.ContactID,
		ContactName:  req.ContactName,
		ContactTitle: req.ContactTitle,
		Emails:       emails,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func listMetas(items map[string]models.SavedEmail, accountIndex int) []models.SavedEmailMeta {
	metas := make([]models.SavedEmailMeta, 0, len(items))
	for _, item := range items {
		if accountIndex > 0 && item.AccountIndex != accountIndex {
			continue
		}
		metas = append(metas, item.Meta())
	}
	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].CreatedAt.After(metas[j].CreatedAt)
		}
		return metas[i].ID < metas[j].ID
	})
	return metas
}
