// Package store persists accepted email sequences behind a small interface
// so the medium (memory, file snapshot, MySQL) is a configuration choice
// and the interface is the contract under test.
package store

import (
	"context"
	"errors"
	"fmt"

	"outreach/internal/config"
	"outreach/internal/models"
)

// ErrNotFound signals a missing id on Get or Delete.
var ErrNotFound = errors.New("saved sequence not found")

// Store is the persistence boundary for accepted sequences. Save assigns the
// id and timestamps; List filters by account when accountIndex > 0; Delete
// reports whether the id existed. No update operation is exposed.
type Store interface {
	Save(ctx context.Context, req models.SaveRequest) (*models.SavedEmail, error)
	Get(ctx context.Context, id string) (*models.SavedEmail, error)
	List(ctx context.Context, accountIndex int) ([]models.SavedEmailMeta, error)
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// New selects a backend from configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "", "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.StoreFile)
	case "mysql":
		return NewSQL(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want memory, file or mysql)", cfg.StoreBackend)
	}
}
