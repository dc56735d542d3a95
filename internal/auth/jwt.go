package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Validator verifies HS256 access tokens minted by the identity provider.
// Tokens carry the user ID as subject and the role as a custom claim.
type Validator struct {
	secret []byte
	issuer string
}

// NewValidator creates a new access token validator.
// secret must be at least 32 characters for HS256 security.
func NewValidator(secret string, issuer string) *Validator {
	return &Validator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// AccessClaims extends standard JWT claims with the user's role.
type AccessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// ValidateToken implements the transport token validator.
func (v *Validator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.ValidateAccessToken(token)
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the user ID and role if valid. Tokens without a known role are
// rejected.
func (v *Validator) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	if !domain.UserRole(claims.Role).IsValid() {
		return uuid.Nil, "", fmt.Errorf("invalid role claim %q", claims.Role)
	}

	return userID, claims.Role, nil
}
