package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
)

// wishlistRepository implements WishlistRepository over the document
// store. Each operation runs getOrCreate + mutate + persist as one
// atomic unit under the store mutex.
type wishlistRepository struct {
	store *store.Store
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(st *store.Store) WishlistRepository {
	return &wishlistRepository{store: st}
}

// getOrCreate returns the user's wishlist document, creating an empty
// one if none exists. Callers must hold the store lock via Update.
func getOrCreateWishlist(d *store.Data, userID string) *models.Wishlist {
	for _, w := range d.Wishlists {
		if w.UserID == userID {
			return w
		}
	}
	doc := &models.Wishlist{UserID: userID, Items: []string{}}
	d.Wishlists = append(d.Wishlists, doc)
	return doc
}

// Items returns the current item list, creating the document on first
// access.
func (r *wishlistRepository) Items(_ context.Context, userID string) ([]string, error) {
	var items []string
	err := r.store.Update(func(d *store.Data) error {
		items = snapshotItems(getOrCreateWishlist(d, userID))
		return nil
	})
	return items, err
}

// Add prepends bookID if absent. Re-adding a present id is a no-op.
func (r *wishlistRepository) Add(_ context.Context, userID, bookID string) ([]string, error) {
	var items []string
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateWishlist(d, userID)
		if !contains(doc.Items, bookID) {
			doc.Items = append([]string{bookID}, doc.Items...)
		}
		items = snapshotItems(doc)
		return nil
	})
	return items, err
}

// Remove filters bookID out. Removing an absent id is a no-op.
func (r *wishlistRepository) Remove(_ context.Context, userID, bookID string) ([]string, error) {
	var items []string
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateWishlist(d, userID)
		doc.Items = without(doc.Items, bookID)
		items = snapshotItems(doc)
		return nil
	})
	return items, err
}

// Toggle removes bookID when present, otherwise prepends it.
func (r *wishlistRepository) Toggle(_ context.Context, userID, bookID string) ([]string, error) {
	var items []string
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateWishlist(d, userID)
		if contains(doc.Items, bookID) {
			doc.Items = without(doc.Items, bookID)
		} else {
			doc.Items = append([]string{bookID}, doc.Items...)
		}
		items = snapshotItems(doc)
		return nil
	})
	return items, err
}

func contains(items []string, id string) bool {
	for _, it := range items {
		if it == id {
			return true
		}
	}
	return false
}

func without(items []string, id string) []string {
	out := items[:0]
	for _, it := range items {
		if it != id {
			out = append(out, it)
		}
	}
	return out
}

// snapshotItems copies the slice so callers never hold a reference
// into the store after the lock is released.
func snapshotItems(doc *models.Wishlist) []string {
	out := make([]string, len(doc.Items))
	copy(out, doc.Items)
	return out
}
