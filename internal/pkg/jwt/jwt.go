package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the payload carried by both access and refresh tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const issuer = "novalibrary"

// GenerateAccessToken signs a short-lived access token.
func GenerateAccessToken(userID, email, role, secret string, expiryMinutes int) (string, error) {
	return generate(userID, email, role, secret, time.Duration(expiryMinutes)*time.Minute)
}

// GenerateRefreshToken signs a long-lived refresh token with its own
// secret. Verification here is purely cryptographic; whether the token
// is still honored is decided by the allow-list in the store.
func GenerateRefreshToken(userID, email, role, secret string, expiryDays int) (string, error) {
	return generate(userID, email, role, secret, time.Duration(expiryDays)*24*time.Hour)
}

func generate(userID, email, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp have second granularity; jti keeps two tokens
			// minted within the same second distinct.
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken checks signature and expiry of an access token
// and returns its claims.
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	return validate(tokenString, secret)
}

// ValidateRefreshToken checks signature and expiry of a refresh token
// and returns its claims.
func ValidateRefreshToken(tokenString, secret string) (*Claims, error) {
	return validate(tokenString, secret)
}

func validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
