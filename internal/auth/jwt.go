// Package auth validates bearer tokens issued by the external identity
// provider and evaluates the capabilities they grant.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// JWTManager validates HS256 access tokens carrying tenant-scoped claims.
// It can also issue tokens for tooling and tests.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, issuer string) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer}
}

// accessClaims extends standard JWT claims with the tenant context.
type accessClaims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenant_id"`
	TeamID   string `json:"team_id,omitempty"`
	Role     string `json:"role,omitempty"`
}

// GenerateAccessToken signs a token for the identity, valid for ttl.
func (m *JWTManager) GenerateAccessToken(id ctxutil.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TenantID: id.TenantID.String(),
		Role:     id.Role,
	}
	if id.TeamID != nil {
		claims.TeamID = id.TeamID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and returns the caller identity.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid tenant UUID: %w", err)
	}

	id := ctxutil.Identity{UserID: userID, TenantID: tenantID, Role: claims.Role}
	if claims.TeamID != "" {
		teamID, err := uuid.Parse(claims.TeamID)
		if err != nil {
			return ctxutil.Identity{}, fmt.Errorf("invalid team UUID: %w", err)
		}
		id.TeamID = &teamID
	}
	return id, nil
}
