package handlers

import (
	"context"

	"novalibrary/internal/adapters/http/middleware"
	"novalibrary/internal/core/services"
	"novalibrary/internal/pkg/response"
	"novalibrary/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// WishlistRequest represents a wishlist mutation body
type WishlistRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

// Get handles GET /wishlist
func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	items, err := h.wishlistService.Items(c.Context(), middleware.UserID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load wishlist")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}

// Add handles POST /wishlist/add
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	return h.mutate(c, h.wishlistService.Add)
}

// Remove handles POST /wishlist/remove
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	return h.mutate(c, h.wishlistService.Remove)
}

// Toggle handles POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	return h.mutate(c, h.wishlistService.Toggle)
}

func (h *WishlistHandler) mutate(c *fiber.Ctx, op func(ctx context.Context, userID, bookID string) ([]string, error)) error {
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := validate.Struct(&req); errs != nil {
		return response.ValidationFailed(c, errs)
	}

	items, err := op(c.Context(), middleware.UserID(c), req.BookID)
	if err != nil {
		return response.InternalServerError(c, "Failed to update wishlist")
	}
	return response.Success(c, "", fiber.Map{"items": items})
}
