package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"outreach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRequest(accountIndex int, contactID string) models.SaveRequest {
	seq := make(models.EmailSequence, 0, models.SequenceLength)
	for i := 1; i <= models.SequenceLength; i++ {
		seq = append(seq, models.EmailVariant{
			VariantID:   fmt.Sprintf("%03d-dwhitfield-E%d", accountIndex, i),
			EmailNumber: i,
			SubjectLine: "Epic go-live without the training crunch",
			Body:        strings.TrimSpace(strings.Repeat("signal ", 169)) + "\n\nSarah",
			WordCount:   170,
			Angle:       models.AngleOrder[i-1],
		})
	}
	return models.SaveRequest{
		AccountIndex: accountIndex,
		AccountName:  "Mercy General Health",
		ContactID:    contactID,
		ContactName:  "Dana Whitfield",
		ContactTitle: "Director of Clinical Education",
		Emails:       seq,
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	req := saveRequest(42, "c-104")

	saved, err := s.Save(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, 5*time.Second)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, req.Emails, saved.Emails)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	found, err := s.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = s.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	metas, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemory()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := s.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ListFilterAndOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	a, err := s.Save(ctx, saveRequest(1, "c-1"))
	require.NoError(t, err)
	b, err := s.Save(ctx, saveRequest(2, "c-2"))
	require.NoError(t, err)
	c, err := s.Save(ctx, saveRequest(1, "c-3"))
	require.NoError(t, err)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, m := range all {
		assert.Equal(t, models.SequenceLength, m.EmailCount)
	}

	filtered, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	ids := []string{filtered[0].ID, filtered[1].ID}
	assert.Contains(t, ids, a.ID)
	assert.Contains(t, ids, c.ID)
	assert.NotContains(t, ids, b.ID)

	// Newest first.
	assert.False(t, all[0].CreatedAt.Before(all[1].CreatedAt))
}

func TestMemoryStore_SaveCopiesSequence(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	req := saveRequest(42, "c-104")

	saved, err := s.Save(ctx, req)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the stored copy.
	req.Emails[0].SubjectLine = "mutated"
	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", got.Emails[0].SubjectLine)
}
