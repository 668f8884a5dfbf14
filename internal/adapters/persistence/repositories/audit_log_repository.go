package repositories

import (
	"context"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/store"
)

// Log listing limits
const (
	DefaultLogLimit = 50
	MaxLogLimit     = 200
)

// auditLogRepository implements AuditLogRepository over the document
// store
type auditLogRepository struct {
	store *store.Store
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(st *store.Store) AuditLogRepository {
	return &auditLogRepository{store: st}
}

// Append prepends the entry so the log reads newest first.
func (r *auditLogRepository) Append(_ context.Context, entry *models.AuditLog) error {
	return r.store.Update(func(d *store.Data) error {
		e := *entry
		d.Logs = append([]*models.AuditLog{&e}, d.Logs...)
		return nil
	})
}

// List returns the newest entries, limit clamped to [1, MaxLogLimit].
// Callers pass DefaultLogLimit when no limit was requested.
func (r *auditLogRepository) List(_ context.Context, limit int) ([]*models.AuditLog, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLogLimit {
		limit = MaxLogLimit
	}

	var out []*models.AuditLog
	err := r.store.View(func(d *store.Data) error {
		n := limit
		if n > len(d.Logs) {
			n = len(d.Logs)
		}
		out = make([]*models.AuditLog, 0, n)
		for _, e := range d.Logs[:n] {
			cp := *e
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}
