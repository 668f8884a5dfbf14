package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"novalibrary/internal/adapters/http/middleware"
	"novalibrary/internal/adapters/http/routes"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/config"
	"novalibrary/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the document store
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	log.Printf("Document store ready at %s", st.Path())

	// Seed demo accounts (dev only, opt-in)
	if cfg.Store.SeedDemo {
		if err := config.NewSeeder(st).Run(); err != nil {
			log.Printf("Warning: seeding failed: %v", err)
		}
	}

	// Nightly sweep of stale refresh tokens
	cleanup := services.NewTokenCleanupService(repositories.NewRefreshTokenRepository(st), cfg)
	cleanup.Start()
	defer cleanup.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "NovaLibrary API v1.0",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, st, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
