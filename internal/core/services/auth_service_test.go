package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/adapters/persistence/store"
	"novalibrary/internal/config"
	"novalibrary/internal/core/domain"
)

func newAuthService(t *testing.T) (*AuthService, repositories.RefreshTokenRepository) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			AccessSecret:     "svc-access-secret",
			RefreshSecret:    "svc-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}

	tokenRepo := repositories.NewRefreshTokenRepository(st)
	return NewAuthService(repositories.NewUserRepository(st), tokenRepo, cfg), tokenRepo
}

func TestAuthService_RegisterTrimsAndDefaults(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, &RegisterInput{
		Name: "  Alice  ", Email: "  alice@x.com  ", Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", res.User.Name)
	assert.Equal(t, "alice@x.com", res.User.Email)
	assert.Equal(t, "reader", res.User.Role)
	assert.Equal(t, "active", res.User.Status)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
}

func TestAuthService_ConcurrentRegisterSameEmail(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			AccessSecret:     "svc-access-secret",
			RefreshSecret:    "svc-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	userRepo := repositories.NewUserRepository(st)
	svc := NewAuthService(userRepo, repositories.NewRefreshTokenRepository(st), cfg)
	ctx := context.Background()

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, &RegisterInput{
				Name: "Alice", Email: "alice@x.com", Password: "secret1",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	registered := 0
	for err := range errs {
		if err == nil {
			registered++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, registered)

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthService_RegisterDuplicateAfterTrim(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "Dup", Email: " ALICE@x.com ", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_LoginErrorsAreUniform(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "alice@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_RefreshDoesNotRotate(t *testing.T) {
	svc, tokenRepo := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	refresh := res.Tokens.RefreshToken

	access, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	// The original refresh token stays on the allow-list and keeps
	// working.
	ok, err := tokenRepo.Exists(ctx, res.User.ID, refresh)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Refresh(ctx, refresh)
	assert.NoError(t, err)
}

func TestAuthService_RefreshRejectsUnknownToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthService_LogoutRevokesSingleSession(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	s1, err := svc.Login(ctx, &LoginInput{Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	s2, err := svc.Login(ctx, &LoginInput{Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, s1.Tokens.RefreshToken))
	// Repeated logout with the same token is harmless.
	require.NoError(t, svc.Logout(ctx, s1.Tokens.RefreshToken))

	_, err = svc.Refresh(ctx, s1.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)

	_, err = svc.Refresh(ctx, s2.Tokens.RefreshToken)
	assert.NoError(t, err)
}
