package routes

import (
	"novalibrary/internal/adapters/http/handlers"
	"novalibrary/internal/adapters/http/middleware"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/config"
	"novalibrary/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup wires repositories, services and handlers, then mounts all
// routes on the app.
func Setup(app *fiber.App, st *store.Store, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(st)
	tokenRepo := repositories.NewRefreshTokenRepository(st)
	wishlistRepo := repositories.NewWishlistRepository(st)
	cartRepo := repositories.NewCartRepository(st)
	logRepo := repositories.NewAuditLogRepository(st)

	// Services
	authService := services.NewAuthService(userRepo, tokenRepo, cfg)
	auditService := services.NewAuditService(logRepo)
	userService := services.NewUserService(userRepo, auditService)
	wishlistService := services.NewWishlistService(wishlistRepo)
	cartService := services.NewCartService(cartRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(st)
	authHandler := handlers.NewAuthHandler(authService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	cartHandler := handlers.NewCartHandler(cartService)
	adminHandler := handlers.NewAdminHandler(userService, auditService)

	// Health check & root
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	apiV1 := app.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	wishlistRoutes := apiV1.Group("/wishlist")
	wishlistRoutes.Use(middleware.AuthMiddleware(cfg))
	setupWishlistRoutes(wishlistRoutes, wishlistHandler)

	cartRoutes := apiV1.Group("/cart")
	cartRoutes.Use(middleware.AuthMiddleware(cfg))
	setupCartRoutes(cartRoutes, cartHandler)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, adminHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Credential endpoints carry a stricter quota in production.
	if cfg.IsProd() {
		router.Use(middleware.AuthRateLimiter())
	}

	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)
	router.Post("/refresh", handler.Refresh)
	router.Post("/logout", handler.Logout)

	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupWishlistRoutes configures wishlist routes
func setupWishlistRoutes(router fiber.Router, handler *handlers.WishlistHandler) {
	router.Get("/", handler.Get)
	router.Post("/add", handler.Add)
	router.Post("/remove", handler.Remove)
	router.Post("/toggle", handler.Toggle)
}

// setupCartRoutes configures cart routes
func setupCartRoutes(router fiber.Router, handler *handlers.CartHandler) {
	router.Get("/", handler.Get)
	router.Post("/add", handler.Add)
	router.Post("/update", handler.Update)
	router.Post("/remove", handler.Remove)
	router.Post("/clear", handler.Clear)
}

// setupAdminRoutes configures admin routes
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/users", handler.ListUsers)
	router.Post("/users", handler.CreateUser)
	router.Patch("/users/:id/role", handler.UpdateRole)
	router.Patch("/users/:id/status", handler.UpdateStatus)
	router.Get("/logs", handler.GetLogs)
}
