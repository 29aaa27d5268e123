package auth

import (
	"context"
	"slices"

	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// RolePolicy grants the bulk-edit capability to a fixed set of roles.
type RolePolicy struct {
	bulkRoles []string
}

// NewRolePolicy creates a policy from the configured bulk-edit roles.
func NewRolePolicy(bulkRoles []string) *RolePolicy {
	return &RolePolicy{bulkRoles: slices.Clone(bulkRoles)}
}

// HasBulkEditCapability reports whether the caller in ctx may run bulk updates.
func (p *RolePolicy) HasBulkEditCapability(ctx context.Context) bool {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || id.Role == "" {
		return false
	}
	return slices.Contains(p.bulkRoles, id.Role)
}
