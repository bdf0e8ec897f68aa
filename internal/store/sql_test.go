package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"outreach/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestNewSQL_EmptyURL(t *testing.T) {
	s, err := NewSQL("")
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestSQLStore_Save(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO saved_emails").
		WithArgs(
			sqlmock.AnyArg(), 42, "Mercy General Health", "c-104",
			"Dana Whitfield", "Director of Clinical Education",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := s.Save(context.Background(), saveRequest(42, "c-104"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Len(t, saved.Emails, models.SequenceLength)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get(t *testing.T) {
	s, mock := newMockStore(t)
	req := saveRequest(42, "c-104")
	emailsJSON, err := json.Marshal(req.Emails)
	require.NoError(t, err)
	now := time.Now().UTC().Truncate(time.Second)

	cols := []string{"id", "account_index", "account_name", "contact_id", "contact_name", "contact_title", "emails", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT \\* FROM saved_emails WHERE id = \\?").
		WithArgs("abc-123").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"abc-123", 42, req.AccountName, req.ContactID, req.ContactName, req.ContactTitle,
			emailsJSON, now, now,
		))

	got, err := s.Get(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", got.ID)
	assert.Equal(t, req.Emails, got.Emails)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM saved_emails WHERE id = \\?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLStore_List(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC().Truncate(time.Second)
	cols := []string{"id", "account_index", "account_name", "contact_id", "contact_name", "contact_title", "email_count", "created_at", "updated_at"}

	tests := []struct {
		name         string
		accountIndex int
		queryRe      string
		args         []driver.Value
	}{
		{"unfiltered", 0, "SELECT (.+) FROM saved_emails ORDER BY created_at DESC", nil},
		{"filtered", 42, "SELECT (.+) FROM saved_emails WHERE account_index = \\?", []driver.Value{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mock.ExpectQuery(tt.queryRe)
			if tt.args != nil {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows(cols).AddRow(
				"abc-123", 42, "Mercy General Health", "c-104", "Dana Whitfield",
				"Director of Clinical Education", 3, now, now,
			))

			metas, err := s.List(context.Background(), tt.accountIndex)
			require.NoError(t, err)
			require.Len(t, metas, 1)
			assert.Equal(t, 3, metas[0].EmailCount)
			assert.Equal(t, 42, metas[0].AccountIndex)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Delete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM saved_emails WHERE id = \\?").
		WithArgs("abc-123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM saved_emails WHERE id = \\?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := s.Delete(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
