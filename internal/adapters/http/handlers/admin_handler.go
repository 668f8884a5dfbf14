package handlers

import (
	"errors"
	"strconv"

	"novalibrary/internal/adapters/http/middleware"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/core/domain"
	"novalibrary/internal/core/services"
	"novalibrary/internal/pkg/response"
	"novalibrary/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin user management and audit log endpoints
type AdminHandler struct {
	userService  *services.UserService
	auditService *services.AuditService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService *services.UserService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{userService: userService, auditService: auditService}
}

// CreateUserRequest represents an admin user creation body
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin librarian reader"`
}

// UpdateRoleRequest represents a role change body
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin librarian reader"`
}

// UpdateStatusRequest represents a status change body
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked"`
}

func actor(c *fiber.Ctx) services.Actor {
	return services.Actor{ID: middleware.UserID(c), Email: middleware.Email(c)}
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}
	return response.Success(c, "", fiber.Map{"users": users})
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.CreateUser(c.Context(), actor(c), &services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.BadRequest(c, "Email already registered")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", fiber.Map{"user": user})
}

// UpdateRole handles PATCH /admin/users/:id/role
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.ChangeRole(c.Context(), actor(c), c.Params("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		default:
			return response.InternalServerError(c, "Failed to update role")
		}
	}

	return response.Success(c, "Role updated successfully", fiber.Map{"user": user})
}

// UpdateStatus handles PATCH /admin/users/:id/status
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.ChangeStatus(c.Context(), actor(c), c.Params("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		default:
			return response.InternalServerError(c, "Failed to update status")
		}
	}

	return response.Success(c, "Status updated successfully", fiber.Map{"user": user})
}

// GetLogs handles GET /admin/logs?limit=N. An absent or unparsable
// limit falls back to the default; explicit values are clamped by the
// repository.
func (h *AdminHandler) GetLogs(c *fiber.Ctx) error {
	limit := repositories.DefaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil {
			limit = n
		}
	}

	logs, err := h.auditService.List(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load logs")
	}
	return response.Success(c, "", fiber.Map{"logs": logs})
}
