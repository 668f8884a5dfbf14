package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
)

// refreshTokenRepository implements RefreshTokenRepository over the
// document store
type refreshTokenRepository struct {
	store *store.Store
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(st *store.Store) RefreshTokenRepository {
	return &refreshTokenRepository{store: st}
}

// Create records a refresh token on the allow-list and persists.
func (r *refreshTokenRepository) Create(_ context.Context, token *models.RefreshToken) error {
	return r.store.Update(func(d *store.Data) error {
		t := *token
		d.Tokens = append(d.Tokens, &t)
		return nil
	})
}

// Exists reports whether the verbatim (userID, refreshToken) pair is
// on the allow-list.
func (r *refreshTokenRepository) Exists(_ context.Context, userID, refreshToken string) (bool, error) {
	exists := false
	err := r.store.View(func(d *store.Data) error {
		for _, t := range d.Tokens {
			if t.UserID == userID && t.RefreshToken == refreshToken {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

// Delete removes records matching the exact token string. Removing an
// already-removed token is not an error; the bool reports whether
// anything matched.
func (r *refreshTokenRepository) Delete(_ context.Context, refreshToken string) (bool, error) {
	removed := false
	err := r.store.Update(func(d *store.Data) error {
		kept := d.Tokens[:0]
		for _, t := range d.Tokens {
			if t.RefreshToken == refreshToken {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		d.Tokens = kept
		return nil
	})
	return removed, err
}

// Prune removes every record for which stale returns true and reports
// how many were dropped.
func (r *refreshTokenRepository) Prune(_ context.Context, stale func(*models.RefreshToken) bool) (int, error) {
	pruned := 0
	err := r.store.Update(func(d *store.Data) error {
		kept := d.Tokens[:0]
		for _, t := range d.Tokens {
			if stale(t) {
				pruned++
				continue
			}
			kept = append(kept, t)
		}
		d.Tokens = kept
		return nil
	})
	return pruned, err
}
