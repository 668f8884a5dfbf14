package handlers

import (
	"time"

	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "NovaLibrary API is running",
		"mode":    config.AppConfig.AppMode,
	})
}

// HealthCheck reports API and store health.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	storeStatus := "healthy"
	if err := h.store.View(func(*store.Data) error { return nil }); err != nil {
		storeStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": fiber.Map{
			"api":   "healthy",
			"store": storeStatus,
		},
	})
}
