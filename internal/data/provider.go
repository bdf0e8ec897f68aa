// Package data loads the read-only account and contact reference shards.
// Accounts live in accounts.json; each account's contacts live in
// contacts/account_<index>.json. The system never writes these files.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"outreach/internal/models"
)

// ErrNotFound signals an unknown account index or a missing contact shard.
var ErrNotFound = errors.New("account not found")

// Provider reads and caches the reference data. The parsed accounts file is
// cached with a TTL so browsing doesn't re-read it per request; contact
// shards are small and read on demand.
type Provider struct {
	dir string
	ttl time.Duration

	mu       sync.RWMutex
	accounts []models.Account
	loadedAt time.Time
}

// NewProvider creates a provider over dir with the given cache TTL.
func NewProvider(dir string, ttlMinutes int) *Provider {
	return &Provider{dir: dir, ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Accounts returns all accounts, cached.
func (p *Provider) Accounts() ([]models.Account, error) {
	p.mu.RLock()
	if p.accounts != nil && time.Since(p.loadedAt) < p.ttl {
		accounts := p.accounts
		p.mu.RUnlock()
		return accounts, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.accounts != nil && time.Since(p.loadedAt) < p.ttl {
		return p.accounts, nil
	}

	data, err := os.ReadFile(filepath.Join(p.dir, "accounts.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}
	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("accounts file is malformed: %w", err)
	}

	p.accounts = accounts
	p.loadedAt = time.Now()
	return accounts, nil
}

// Account returns one account by index or ErrNotFound.
func (p *Provider) Account(index int) (*models.Account, error) {
	accounts, err := p.Accounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Index == index {
			return &accounts[i], nil
		}
	}
	return nil, ErrNotFound
}

// AccountList returns the selection-UI projection of all accounts.
func (p *Provider) AccountList() ([]models.AccountListItem, error) {
	accounts, err := p.Accounts()
	if err != nil {
		return nil, err
	}
	items := make([]models.AccountListItem, len(accounts))
	for i, a := range accounts {
		items[i] = models.AccountListItem{
			Index:       a.Index,
			CompanyName: a.CompanyName,
			Tier:        a.Tier,
			EHRPlatform: a.EHRPlatform,
		}
	}
	return items, nil
}

// Contacts returns the account's contacts sorted ascending by stored
// outreach priority. A missing shard means the account is unknown.
func (p *Provider) Contacts(index int) ([]models.Contact, error) {
	path := filepath.Join(p.dir, "contacts", fmt.Sprintf("account_%03d.json", index))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contact shard: %w", err)
	}

	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("contact shard %s is malformed: %w", path, err)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].OutreachPriority < contacts[j].OutreachPriority
	})
	return contacts, nil
}
