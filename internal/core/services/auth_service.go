package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"novalibrary/internal/adapters/persistence/models"
	"novalibrary/internal/adapters/persistence/repositories"
	"novalibrary/internal/config"
	"novalibrary/internal/core/domain"
	"novalibrary/internal/pkg/jwt"
	"novalibrary/internal/pkg/password"

	"github.com/google/uuid"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput represents login input
type LoginInput struct {
	Email    string
	Password string
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User   *models.UserResponse `json:"user"`
	Tokens *models.TokenPair    `json:"tokens"`
}

// Register registers a new reader account.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	// 1. Hash the password before touching the store; bcrypt is slow
	// and must not run under the store lock.
	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 2. Create the user with the default role. The repository rejects
	// duplicate emails case-insensitively, atomically with the insert.
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleReader,
		Status:       models.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 3. Issue tokens and record the refresh token
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s", user.Email)

	return &AuthResponse{User: user.ToResponse(), Tokens: tokens}, nil
}

// Login authenticates a user. Unknown email and wrong password produce
// the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// A new session does not invalidate earlier ones.
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Email)

	return &AuthResponse{User: user.ToResponse(), Tokens: tokens}, nil
}

// Me returns the sanitized profile for the given user id.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// Refresh exchanges a refresh token for a new access token. The
// refresh token itself is not rotated. Signature and expiry are checked
// first, then allow-list membership, which is what makes logout
// effective.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}

	ok, err := s.tokenRepo.Exists(ctx, claims.UserID, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrSessionRevoked
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	accessToken, err := jwt.GenerateAccessToken(
		user.ID, user.Email, user.Role,
		s.cfg.JWT.AccessSecret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return "", err
	}

	log.Printf("Token refreshed for: %s", user.Email)
	return accessToken, nil
}

// Logout removes the refresh token from the allow-list. Logging out an
// unknown or already-removed token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	removed, err := s.tokenRepo.Delete(ctx, refreshToken)
	if err != nil {
		return err
	}
	if removed {
		log.Printf("User logged out")
	}
	return nil
}

// issueTokens generates a token pair and records the refresh token on
// the allow-list.
func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.ID, user.Email, user.Role,
		s.cfg.JWT.AccessSecret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		user.ID, user.Email, user.Role,
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
