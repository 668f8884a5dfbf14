package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"novalibrary/internal/adapters/persistence/models"
)

// Data is the full dataset held in memory and mirrored to disk as a
// single JSON document.
type Data struct {
	Users     []*models.User         `json:"users"`
	Tokens    []*models.RefreshToken `json:"tokens"`
	Wishlists []*models.Wishlist     `json:"wishlists"`
	Carts     []*models.Cart         `json:"carts"`
	Logs      []*models.AuditLog     `json:"logs"`
}

// ensureCollections materializes any collection missing from an older
// on-disk file, so files written before a key existed keep loading.
func (d *Data) ensureCollections() {
	if d.Users == nil {
		d.Users = []*models.User{}
	}
	if d.Tokens == nil {
		d.Tokens = []*models.RefreshToken{}
	}
	if d.Wishlists == nil {
		d.Wishlists = []*models.Wishlist{}
	}
	if d.Carts == nil {
		d.Carts = []*models.Cart{}
	}
	if d.Logs == nil {
		d.Logs = []*models.AuditLog{}
	}
}

// Store owns the dataset. Every read and every read-modify-persist
// cycle runs under one mutex, so two requests touching the same user's
// documents can never interleave around the disk write.
type Store struct {
	mu   sync.Mutex
	path string
	data *Data
}

// Open loads the backing file at path, creating a default empty
// dataset (and the parent directory) when no file exists yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: &Data{}}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, s.data); err != nil {
				return nil, fmt.Errorf("store: parse %s: %w", path, err)
			}
		}
	case errors.Is(err, os.ErrNotExist):
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create dir %s: %w", dir, err)
			}
		}
	default:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	s.data.ensureCollections()

	// Write the (possibly upgraded) structure back, as the reference
	// implementation does on init.
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update runs fn with exclusive access to the dataset and persists the
// full state afterwards. A non-nil error from fn aborts the persist.
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.data); err != nil {
		return err
	}
	return s.persistLocked()
}

// View runs fn with exclusive read access. fn must not retain or
// mutate anything reachable from Data.
func (s *Store) View(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// persistLocked serializes the whole dataset over the backing file.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}
