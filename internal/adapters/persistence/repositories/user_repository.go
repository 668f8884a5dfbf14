package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/core/domain"
)

// userRepository implements UserRepository over the document store
type userRepository struct {
	store *store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

// Create appends a new user and persists. The duplicate-email check
// and the insert run under the same lock, so two concurrent creations
// cannot both claim an email.
func (r *userRepository) Create(_ context.Context, user *models.User) error {
	return r.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.EmailMatches(user.Email) {
				return domain.ErrDuplicateEmail
			}
		}
		u := *user
		d.Users = append(d.Users, &u)
		return nil
	})
}

// GetByID returns the user with the given id.
func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	var out *models.User
	err := r.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.ID == id {
				cp := *u
				out = &cp
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}

// GetByEmail returns the user whose email matches case-insensitively.
func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	var out *models.User
	err := r.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.EmailMatches(email) {
				cp := *u
				out = &cp
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}

// ExistsByEmail reports whether a user with the email exists,
// case-insensitively.
func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	exists := false
	err := r.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.EmailMatches(email) {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

// List returns all users in insertion order.
func (r *userRepository) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	err := r.store.View(func(d *store.Data) error {
		out = make([]*models.User, 0, len(d.Users))
		for _, u := range d.Users {
			cp := *u
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// UpdateRole sets the user's role and returns the updated user along
// with the previous role.
func (r *userRepository) UpdateRole(_ context.Context, id, role string) (*models.User, string, error) {
	var out *models.User
	var oldRole string
	err := r.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.ID == id {
				oldRole = u.Role
				u.Role = role
				cp := *u
				out = &cp
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, oldRole, err
}

// UpdateStatus sets the user's status and returns the updated user
// along with the previous status (defaulted to active for old records).
func (r *userRepository) UpdateStatus(_ context.Context, id, status string) (*models.User, string, error) {
	var out *models.User
	var oldStatus string
	err := r.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.ID == id {
				oldStatus = u.Status
				if oldStatus == "" {
					oldStatus = models.StatusActive
				}
				u.Status = status
				cp := *u
				out = &cp
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, oldStatus, err
}

// CountByRole counts users holding the given role.
func (r *userRepository) CountByRole(_ context.Context, role string) (int, error) {
	count := 0
	err := r.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Role == role {
				count++
			}
		}
		return nil
	})
	return count, err
}
