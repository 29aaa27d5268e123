// Package ctxutil carries the caller identity resolved by the auth layer
// through request contexts.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	tenantIDKey  ctxKey = "tenant_id"
	teamIDKey    ctxKey = "team_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// Identity is the tenant-scoped caller produced by the external auth capability.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	TeamID   *uuid.UUID
	Role     string
}

// WithIdentity stores every identity field in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = WithUserID(ctx, id.UserID)
	ctx = WithTenantID(ctx, id.TenantID)
	if id.TeamID != nil {
		ctx = context.WithValue(ctx, teamIDKey, *id.TeamID)
	}
	if id.Role != "" {
		ctx = context.WithValue(ctx, roleKey, id.Role)
	}
	return ctx
}

// IdentityFromCtx returns the caller identity. ok is false unless both the
// user and the tenant are present.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	userID, ok := UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	tenantID, ok := TenantIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	id := Identity{UserID: userID, TenantID: tenantID, Role: RoleFromCtx(ctx)}
	if team, ok := ctx.Value(teamIDKey).(uuid.UUID); ok && team != uuid.Nil {
		id.TeamID = &team
	}
	return id, true
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithTenantID stores the tenant ID in the context.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

// TenantIDFromCtx extracts the tenant ID from the context.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// RoleFromCtx returns the caller role, or "" when absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
