package services

import (
	"context"
	"log"
	"time"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
)

// AuditService writes and reads the append-only admin action log
type AuditService struct {
	logRepo repositories.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(logRepo repositories.AuditLogRepository) *AuditService {
	return &AuditService{logRepo: logRepo}
}

// Record writes one entry at the head of the log.
func (s *AuditService) Record(ctx context.Context, actorID, actorEmail, action string, meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	entry := &models.AuditLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		ActorEmail: actorEmail,
		Action:     action,
		Meta:       meta,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return err
	}

	log.Printf("AUDIT: %s - %s", actorEmail, action)
	return nil
}

// List returns the newest entries, limit clamped by the repository.
func (s *AuditService) List(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	return s.logRepo.List(ctx, limit)
}
