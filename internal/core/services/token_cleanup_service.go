package services

import (
	"context"
	"log"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/config"
	"novalibrary/internal/pkg/jwt"

	"github.com/robfig/cron/v3"
)

// TokenCleanupService sweeps the refresh-token allow-list on a
// schedule, dropping records whose token no longer verifies (expired
// or signed with a rotated secret). Nothing in the auth flow depends
// on the sweep; it only keeps the store file from growing unbounded.
type TokenCleanupService struct {
	tokenRepo repositories.RefreshTokenRepository
	cfg       *config.Config
	cron      *cron.Cron
}

// NewTokenCleanupService creates a new token cleanup service
func NewTokenCleanupService(tokenRepo repositories.RefreshTokenRepository, cfg *config.Config) *TokenCleanupService {
	return &TokenCleanupService{
		tokenRepo: tokenRepo,
		cfg:       cfg,
		cron:      cron.New(),
	}
}

// Start schedules the nightly sweep (03:30).
func (s *TokenCleanupService) Start() {
	if _, err := s.cron.AddFunc("30 3 * * *", s.Sweep); err != nil {
		log.Printf("Failed to schedule token cleanup: %v", err)
		return
	}
	s.cron.Start()
	log.Println("TokenCleanupService started")
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *TokenCleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("TokenCleanupService stopped")
}

// Sweep removes stale allow-list records.
func (s *TokenCleanupService) Sweep() {
	pruned, err := s.tokenRepo.Prune(context.Background(), func(rec *models.RefreshToken) bool {
		_, err := jwt.ValidateRefreshToken(rec.RefreshToken, s.cfg.JWT.RefreshSecret)
		return err != nil
	})
	if err != nil {
		log.Printf("Token cleanup failed: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("Token cleanup removed %d stale refresh tokens", pruned)
	}
}
