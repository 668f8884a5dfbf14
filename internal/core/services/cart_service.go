package services

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/repositories"
)

// CartService exposes the per-user cart operations.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// Items returns the user's cart, creating it on first access.
func (s *CartService) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.cartRepo.Items(ctx, userID)
}

// Add increments the line's qty by max(1, qty), prepending a new line
// when absent.
func (s *CartService) Add(ctx context.Context, userID, bookID string, qty int) ([]models.CartItem, error) {
	return s.cartRepo.Add(ctx, userID, bookID, qty)
}

// Update sets the line's qty to exactly max(1, qty), creating the line
// when absent.
func (s *CartService) Update(ctx context.Context, userID, bookID string, qty int) ([]models.CartItem, error) {
	return s.cartRepo.Update(ctx, userID, bookID, qty)
}

// Remove drops the line if present.
func (s *CartService) Remove(ctx context.Context, userID, bookID string) ([]models.CartItem, error) {
	return s.cartRepo.Remove(ctx, userID, bookID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.cartRepo.Clear(ctx, userID)
}
