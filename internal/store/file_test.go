package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"outreach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_emails.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	ctx := context.Background()

	saved, err := s.Save(ctx, saveRequest(42, "c-104"))
	require.NoError(t, err)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	found, err := s.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = s.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_emails.json")
	ctx := context.Background()

	s, err := NewFile(path)
	require.NoError(t, err)
	saved, err := s.Save(ctx, saveRequest(42, "c-104"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewFile(path)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Emails, got.Emails)
}

func TestFileStore_SnapshotIsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_emails.json")
	ctx := context.Background()

	s, err := NewFile(path)
	require.NoError(t, err)

	a, err := s.Save(ctx, saveRequest(1, "c-1"))
	require.NoError(t, err)
	_, err = s.Save(ctx, saveRequest(2, "c-2"))
	require.NoError(t, err)

	// After a delete, the snapshot on disk no longer mentions the id at all.
	_, err = s.Delete(ctx, a.ID)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []models.SavedEmail
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Len(t, onDisk, 1)
	assert.NotEqual(t, a.ID, onDisk[0].ID)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never_written.json")
	s, err := NewFile(path)
	require.NoError(t, err)

	metas, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, metas)

	// No mutation yet, so no file either.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_emails.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}
