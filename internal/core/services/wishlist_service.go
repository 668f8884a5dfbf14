package services

import (
	"context"

	"novalibrary/internal/adapters/persistence/repositories"
)

// WishlistService exposes the per-user wishlist operations. All of
// them are idempotent and return the full, ordered item list.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(wishlistRepo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

// Items returns the user's wishlist, creating it on first access.
func (s *WishlistService) Items(ctx context.Context, userID string) ([]string, error) {
	return s.wishlistRepo.Items(ctx, userID)
}

// Add prepends bookID unless already present.
func (s *WishlistService) Add(ctx context.Context, userID, bookID string) ([]string, error) {
	return s.wishlistRepo.Add(ctx, userID, bookID)
}

// Remove drops bookID if present.
func (s *WishlistService) Remove(ctx context.Context, userID, bookID string) ([]string, error) {
	return s.wishlistRepo.Remove(ctx, userID, bookID)
}

// Toggle adds or removes bookID depending on current presence.
func (s *WishlistService) Toggle(ctx context.Context, userID, bookID string) ([]string, error) {
	return s.wishlistRepo.Toggle(ctx, userID, bookID)
}
