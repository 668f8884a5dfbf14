package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/models"
)

func appendEntries(t *testing.T, repo AuditLogRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Append(context.Background(), &models.AuditLog{
			ID:         fmt.Sprintf("log-%d", i),
			ActorID:    "admin",
			ActorEmail: "admin@lib.com",
			Action:     fmt.Sprintf("action %d", i),
			Meta:       map[string]any{"seq": i},
			CreatedAt:  time.Now().UTC(),
		}))
	}
}

func TestAuditLog_NewestFirst(t *testing.T) {
	repo := NewAuditLogRepository(newTestStore(t))

	appendEntries(t, repo, 3)

	logs, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "log-2", logs[0].ID)
	assert.Equal(t, "log-0", logs[2].ID)
}

func TestAuditLog_LimitClamping(t *testing.T) {
	repo := NewAuditLogRepository(newTestStore(t))
	ctx := context.Background()

	appendEntries(t, repo, 60)

	// Non-positive limits clamp to 1, not to the default.
	logs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	logs, err = repo.List(ctx, -7)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	logs, err = repo.List(ctx, DefaultLogLimit)
	require.NoError(t, err)
	assert.Len(t, logs, DefaultLogLimit)

	logs, err = repo.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, logs, 5)

	// Oversized limits clamp to the maximum.
	logs, err = repo.List(ctx, 10000)
	require.NoError(t, err)
	assert.Len(t, logs, 60)
}

func TestAuditLog_LimitLargerThanLog(t *testing.T) {
	repo := NewAuditLogRepository(newTestStore(t))

	appendEntries(t, repo, 2)

	logs, err := repo.List(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
