package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, id, role string) (*models.User, string, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.User, string, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

// RefreshTokenRepository defines the refresh-token allow-list interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	Exists(ctx context.Context, userID, refreshToken string) (bool, error)
	Delete(ctx context.Context, refreshToken string) (bool, error)
	Prune(ctx context.Context, stale func(*models.RefreshToken) bool) (int, error)
}

// WishlistRepository manages the per-user wishlist documents. Every
// method creates the document lazily and returns the full item list.
type WishlistRepository interface {
	Items(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, bookID string) ([]string, error)
	Remove(ctx context.Context, userID, bookID string) ([]string, error)
	Toggle(ctx context.Context, userID, bookID string) ([]string, error)
}

// CartRepository manages the per-user cart documents.
type CartRepository interface {
	Items(ctx context.Context, userID string) ([]models.CartItem, error)
	Add(ctx context.Context, userID, bookID string, qty int) ([]models.CartItem, error)
	Update(ctx context.Context, userID, bookID string, qty int) ([]models.CartItem, error)
	Remove(ctx context.Context, userID, bookID string) ([]models.CartItem, error)
	Clear(ctx context.Context, userID string) ([]models.CartItem, error)
}

// AuditLogRepository is the append-only, newest-first admin action log.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, limit int) ([]*models.AuditLog, error)
}
