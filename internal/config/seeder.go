package config

import (
	"log"
	"time"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/pkg/password"

	"github.com/google/uuid"
)

// Seeder populates the document store with demo accounts
type Seeder struct {
	store *store.Store
}

// NewSeeder creates a new seeder instance
func NewSeeder(st *store.Store) *Seeder {
	return &Seeder{store: st}
}

type demoUser struct {
	name     string
	email    string
	password string
	role     string
}

// Demo credentials for development and presentation only.
var demoUsers = []demoUser{
	{name: "Admin User", email: "admin@lib.com", password: "123456", role: models.RoleAdmin},
	{name: "Librarian Staff", email: "staff@lib.com", password: "123456", role: models.RoleLibrarian},
	{name: "Demo Reader", email: "reader@lib.com", password: "123456", role: models.RoleReader},
}

// Run seeds demo users unless an admin already exists.
func (s *Seeder) Run() error {
	log.Println("Running store seeder...")

	seeded := false
	err := s.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Role == models.RoleAdmin {
				return nil // already seeded
			}
		}

		var readerID string
		for _, du := range demoUsers {
			if userExists(d, du.email) {
				continue
			}
			hash, err := password.Hash(du.password)
			if err != nil {
				return err
			}
			user := &models.User{
				ID:           uuid.New().String(),
				Name:         du.name,
				Email:        du.email,
				PasswordHash: hash,
				Role:         du.role,
				Status:       models.StatusActive,
				CreatedAt:    time.Now().UTC(),
			}
			d.Users = append(d.Users, user)
			if du.role == models.RoleReader {
				readerID = user.ID
			}
			log.Printf("Seeded user: %s (%s)", du.email, du.role)
		}

		// Give the demo reader something to look at.
		if readerID != "" {
			d.Wishlists = append(d.Wishlists, &models.Wishlist{
				UserID: readerID,
				Items:  []string{"3", "7"},
			})
			d.Carts = append(d.Carts, &models.Cart{
				UserID: readerID,
				Items:  []models.CartItem{{BookID: "12", Qty: 1}},
			})
		}

		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		log.Println("Store seeding completed")
	} else {
		log.Println("Store already seeded, skipping")
	}
	return nil
}

func userExists(d *store.Data, email string) bool {
	for _, u := range d.Users {
		if u.EmailMatches(email) {
			return true
		}
	}
	return false
}
