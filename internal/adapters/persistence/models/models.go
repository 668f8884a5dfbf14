package models

import (
	"strings"
	"time"
)

// User roles
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleReader    = "reader"
)

// User statuses
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleLibrarian || role == RoleReader
}

// ValidStatus reports whether status is one of the known statuses.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusBlocked
}

// User represents a registered account. Email is unique
// case-insensitively; the password hash never leaves this layer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Status       string    `json:"status,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EmailMatches compares emails case-insensitively.
func (u *User) EmailMatches(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// UserResponse is the sanitized user DTO returned by the API.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse strips credentials and fills in the default status for
// records written before the status field existed.
func (u *User) ToResponse() *UserResponse {
	status := u.Status
	if status == "" {
		status = StatusActive
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    status,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken is one entry of the refresh-token allow-list. The token
// string is stored verbatim: a structurally valid refresh token that is
// not present here no longer grants new access tokens.
type RefreshToken struct {
	UserID       string    `json:"userId"`
	RefreshToken string    `json:"refreshToken"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Wishlist is the per-user wishlist document. Items holds book ids,
// newest first, no duplicates. At most one document exists per user.
type Wishlist struct {
	UserID string   `json:"userId"`
	Items  []string `json:"items"`
}

// CartItem is one cart line. Qty is always >= 1.
type CartItem struct {
	BookID string `json:"bookId"`
	Qty    int    `json:"qty"`
}

// Cart is the per-user cart document, newest entries first, at most one
// line per book id.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// AuditLog is one append-only record of an administrative mutation.
// Entries are immutable once written and kept newest first.
type AuditLog struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actorId"`
	ActorEmail string         `json:"actorEmail"`
	Action     string         `json:"action"`
	Meta       map[string]any `json:"meta"`
	CreatedAt  time.Time      `json:"createdAt"`
}
