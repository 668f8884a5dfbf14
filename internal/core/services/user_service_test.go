package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/core/domain"
)

func newUserService(t *testing.T) (*UserService, *AuditService) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	audit := NewAuditService(repositories.NewAuditLogRepository(st))
	return NewUserService(repositories.NewUserRepository(st), audit), audit
}

var testAdmin = Actor{ID: "admin-1", Email: "admin@lib.com"}

func TestUserService_CreateUserDefaultsRole(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, testAdmin, &CreateUserInput{
		Name: "Bob", Email: "bob@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader", user.Role)
	assert.Equal(t, "active", user.Status)
}

func TestUserService_CreateUserRejectsBadRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(context.Background(), testAdmin, &CreateUserInput{
		Name: "Bob", Email: "bob@x.com", Password: "secret1", Role: "pirate",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUserService_CreateUserWritesAuditEntry(t *testing.T) {
	svc, audit := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, testAdmin, &CreateUserInput{
		Name: "Bob", Email: "bob@x.com", Password: "secret1", Role: "librarian",
	})
	require.NoError(t, err)

	logs, err := audit.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, testAdmin.ID, logs[0].ActorID)
	assert.Equal(t, testAdmin.Email, logs[0].ActorEmail)
	assert.Equal(t, user.ID, logs[0].Meta["userId"])
	assert.Equal(t, "librarian", logs[0].Meta["role"])
}

func TestUserService_ChangeRoleRecordsOldAndNew(t *testing.T) {
	svc, audit := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, testAdmin, &CreateUserInput{
		Name: "Bob", Email: "bob@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := svc.ChangeRole(ctx, testAdmin, user.ID, "librarian")
	require.NoError(t, err)
	assert.Equal(t, "librarian", updated.Role)

	logs, err := audit.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "reader", logs[0].Meta["oldRole"])
	assert.Equal(t, "librarian", logs[0].Meta["newRole"])
}

func TestUserService_ChangeStatusRecordsOldAndNew(t *testing.T) {
	svc, audit := newUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, testAdmin, &CreateUserInput{
		Name: "Bob", Email: "bob@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(ctx, testAdmin, user.ID, "blocked")
	require.NoError(t, err)
	assert.Equal(t, "blocked", updated.Status)

	logs, err := audit.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "active", logs[0].Meta["oldStatus"])
	assert.Equal(t, "blocked", logs[0].Meta["newStatus"])
}

func TestUserService_ChangeRoleUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.ChangeRole(context.Background(), testAdmin, "missing", "reader")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.ChangeStatus(context.Background(), testAdmin, "missing", "blocked")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
