package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
)

// cartRepository implements CartRepository over the document store
type cartRepository struct {
	store *store.Store
}

// NewCartRepository creates a new cart repository
func NewCartRepository(st *store.Store) CartRepository {
	return &cartRepository{store: st}
}

// getOrCreateCart returns the user's cart document, creating an empty
// one if none exists. Callers must hold the store lock via Update.
func getOrCreateCart(d *store.Data, userID string) *models.Cart {
	for _, c := range d.Carts {
		if c.UserID == userID {
			return c
		}
	}
	doc := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	d.Carts = append(d.Carts, doc)
	return doc
}

// Items returns the current cart lines, creating the document on first
// access.
func (r *cartRepository) Items(_ context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.store.Update(func(d *store.Data) error {
		items = snapshotCart(getOrCreateCart(d, userID))
		return nil
	})
	return items, err
}

// Add increments the existing line's qty by max(1, qty), or prepends a
// new line with that qty.
func (r *cartRepository) Add(_ context.Context, userID, bookID string, qty int) ([]models.CartItem, error) {
	qty = clampQty(qty)
	var items []models.CartItem
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateCart(d, userID)
		if i := indexOfLine(doc.Items, bookID); i >= 0 {
			doc.Items[i].Qty = clampQty(doc.Items[i].Qty + qty)
		} else {
			doc.Items = append([]models.CartItem{{BookID: bookID, Qty: qty}}, doc.Items...)
		}
		items = snapshotCart(doc)
		return nil
	})
	return items, err
}

// Update sets the line's qty to exactly max(1, qty). A missing line is
// created rather than rejected; callers rely on this.
func (r *cartRepository) Update(_ context.Context, userID, bookID string, qty int) ([]models.CartItem, error) {
	qty = clampQty(qty)
	var items []models.CartItem
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateCart(d, userID)
		if i := indexOfLine(doc.Items, bookID); i >= 0 {
			doc.Items[i].Qty = qty
		} else {
			doc.Items = append([]models.CartItem{{BookID: bookID, Qty: qty}}, doc.Items...)
		}
		items = snapshotCart(doc)
		return nil
	})
	return items, err
}

// Remove filters the line out. Removing an absent line is a no-op.
func (r *cartRepository) Remove(_ context.Context, userID, bookID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateCart(d, userID)
		kept := doc.Items[:0]
		for _, it := range doc.Items {
			if it.BookID != bookID {
				kept = append(kept, it)
			}
		}
		doc.Items = kept
		items = snapshotCart(doc)
		return nil
	})
	return items, err
}

// Clear empties the cart.
func (r *cartRepository) Clear(_ context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.store.Update(func(d *store.Data) error {
		doc := getOrCreateCart(d, userID)
		doc.Items = []models.CartItem{}
		items = snapshotCart(doc)
		return nil
	})
	return items, err
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

func indexOfLine(items []models.CartItem, bookID string) int {
	for i, it := range items {
		if it.BookID == bookID {
			return i
		}
	}
	return -1
}

func snapshotCart(doc *models.Cart) []models.CartItem {
	out := make([]models.CartItem, len(doc.Items))
	copy(out, doc.Items)
	return out
}
