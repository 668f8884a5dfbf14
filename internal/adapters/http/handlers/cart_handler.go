package handlers

import (
	"novalibrary/internal/adapters/http/middleware"
	"novalibrary/internal/core/services"
	"novalibrary/internal/pkg/response"
	"novalibrary/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CartItemRequest represents an add/update cart body. Qty defaults to
// 1 when omitted and is clamped to >= 1 downstream.
type CartItemRequest struct {
	BookID string `json:"bookId" validate:"required"`
	Qty    *int   `json:"qty" validate:"omitempty,min=1"`
}

// CartRemoveRequest represents a remove cart body
type CartRemoveRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

func (r *CartItemRequest) qty() int {
	if r.Qty == nil {
		return 1
	}
	return *r.Qty
}

// Get handles GET /cart
func (h *CartHandler) Get(c *fiber.Ctx) error {
	items, err := h.cartService.Items(c.Context(), middleware.UserID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load cart")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}

// Add handles POST /cart/add
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	items, err := h.cartService.Add(c.Context(), middleware.UserID(c), req.BookID, req.qty())
	if err != nil {
		return response.InternalServerError(c, "Failed to update cart")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}

// Update handles POST /cart/update
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	items, err := h.cartService.Update(c.Context(), middleware.UserID(c), req.BookID, req.qty())
	if err != nil {
		return response.InternalServerError(c, "Failed to update cart")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}

// Remove handles POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var req CartRemoveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	items, err := h.cartService.Remove(c.Context(), middleware.UserID(c), req.BookID)
	if err != nil {
		return response.InternalServerError(c, "Failed to update cart")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	items, err := h.cartService.Clear(c.Context(), middleware.UserID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to clear cart")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}
