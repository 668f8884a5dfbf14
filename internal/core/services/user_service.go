package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/core/domain"
	"novalibrary/internal/pkg/password"

	"github.com/google/uuid"
)

// Actor identifies the admin performing a mutation, for the audit log.
type Actor struct {
	ID    string
	Email string
}

// UserService handles admin user management. Every mutation is written
// to the audit log with the acting admin.
type UserService struct {
	userRepo repositories.UserRepository
	audit    *AuditService
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, audit *AuditService) *UserService {
	return &UserService{userRepo: userRepo, audit: audit}
}

// CreateUserInput represents admin user creation input
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ListUsers returns all users, sanitized.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserResponse, len(users))
	for i, u := range users {
		out[i] = u.ToResponse()
	}
	return out, nil
}

// CreateUser creates an account with an explicit role (reader when
// omitted) and records the action.
func (s *UserService) CreateUser(ctx context.Context, actor Actor, input *CreateUserInput) (*models.UserResponse, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	role := input.Role
	if role == "" {
		role = models.RoleReader
	}
	if !models.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	// Create enforces email uniqueness atomically with the insert.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, actor.ID, actor.Email,
		fmt.Sprintf("Admin created user %s with role %s", user.Email, user.Role),
		map[string]any{"userId": user.ID, "role": user.Role},
	); err != nil {
		return nil, err
	}

	log.Printf("Admin %s created user %s", actor.Email, user.Email)
	return user.ToResponse(), nil
}

// ChangeRole sets the user's role and records old and new values.
func (s *UserService) ChangeRole(ctx context.Context, actor Actor, userID, role string) (*models.UserResponse, error) {
	if !models.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, oldRole, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, actor.ID, actor.Email,
		fmt.Sprintf("Changed role of %s from %s to %s", user.Email, oldRole, role),
		map[string]any{"userId": user.ID, "oldRole": oldRole, "newRole": role},
	); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// ChangeStatus sets the user's status and records old and new values.
func (s *UserService) ChangeStatus(ctx context.Context, actor Actor, userID, status string) (*models.UserResponse, error) {
	if !models.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	user, oldStatus, err := s.userRepo.UpdateStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, actor.ID, actor.Email,
		fmt.Sprintf("Changed status of %s from %s to %s", user.Email, oldStatus, status),
		map[string]any{"userId": user.ID, "oldStatus": oldStatus, "newStatus": status},
	); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}
