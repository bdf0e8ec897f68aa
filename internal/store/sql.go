package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"outreach/internal/models"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS saved_emails (
	id            VARCHAR(36)  NOT NULL PRIMARY KEY,
	account_index INT          NOT NULL,
	account_name  VARCHAR(255) NOT NULL,
	contact_id    VARCHAR(64)  NOT NULL,
	contact_name  VARCHAR(255) NOT NULL,
	contact_title VARCHAR(255) NOT NULL,
	emails        JSON         NOT NULL,
	created_at    DATETIME     NOT NULL,
	updated_at    DATETIME     NOT NULL,
	INDEX idx_account (account_index)
)`

// savedEmailRow is the saved_emails table shape; the sequence is stored as
// a JSON column.
type savedEmailRow struct {
	ID           string    `db:"id"`
	AccountIndex int       `db:"account_index"`
	AccountName  string    `db:"account_name"`
	ContactID    string    `db:"contact_id"`
	ContactName  string    `db:"contact_name"`
	ContactTitle string    `db:"contact_title"`
	Emails       []byte    `db:"emails"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// SQLStore persists saved sequences in MySQL via sqlx.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQL connects to MySQL and ensures the saved_emails table exists.
func NewSQL(databaseURL string) (*SQLStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	db, err := sqlx.Open("mysql", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to ensure saved_emails table: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// NewSQLFromDB wraps an existing connection, used by tests.
func NewSQLFromDB(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Save inserts the sequence with a generated id and timestamps.
func (s *SQLStore) Save(ctx context.Context, req models.SaveRequest) (*models.SavedEmail, error) {
	saved := newSavedEmail(req)

	emailsJSON, err := json.Marshal(saved.Emails)
	if err != nil {
		return nil, fmt.Errorf("failed to encode emails: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_emails
			(id, account_index, account_name, contact_id, contact_name, contact_title, emails, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		saved.ID, saved.AccountIndex, saved.AccountName, saved.ContactID,
		saved.ContactName, saved.ContactTitle, emailsJSON, saved.CreatedAt, saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved sequence: %w", err)
	}
	return &saved, nil
}

// Get returns the saved sequence or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, id string) (*models.SavedEmail, error) {
	var row savedEmailRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM saved_emails WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query saved sequence: %w", err)
	}
	return row.toModel()
}

// List returns metadata newest first, filtered by account when
// accountIndex > 0. Email bodies are not fetched.
func (s *SQLStore) List(ctx context.Context, accountIndex int) ([]models.SavedEmailMeta, error) {
	query := `
		SELECT id, account_index, account_name, contact_id, contact_name, contact_title,
		       JSON_LENGTH(emails) AS email_count, created_at, updated_at
		FROM saved_emails`
	args := []interface{}{}
	if accountIndex > 0 {
		query += ` WHERE account_index = ?`
		args = append(args, accountIndex)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	var metas []models.SavedEmailMeta
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved sequences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m metaRow
		if err := rows.StructScan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan saved sequence: %w", err)
		}
		metas = append(metas, models.SavedEmailMeta(m))
	}
	return metas, rows.Err()
}

type metaRow struct {
	ID           string    `db:"id" json:"id"`
	AccountIndex int       `db:"account_index" json:"account_index"`
	AccountName  string    `db:"account_name" json:"account_name"`
	ContactID    string    `db:"contact_id" json:"contact_id"`
	ContactName  string    `db:"contact_name" json:"contact_name"`
	ContactTitle string    `db:"contact_title" json:"contact_title"`
	EmailCount   int       `db:"email_count" json:"email_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Delete removes the id and reports whether a row existed.
func (s *SQLStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_emails WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved sequence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Ping checks the database connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (r savedEmailRow) toModel() (*models.SavedEmail, error) {
	var emails models.EmailSequence
	if err := json.Unmarshal(r.Emails, &emails); err != nil {
		return nil, fmt.Errorf("stored emails column is corrupt: %w", err)
	}
	return &models.SavedEmail{
		ID:           r.ID,
		AccountIndex: r.AccountIndex,
		AccountName:  r.AccountName,
		ContactID:    r.ContactID,
		ContactName:  r.ContactName,
		ContactTitle: r.ContactTitle,
		Emails:       emails,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
