package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedView is a named snapshot of filters and search text.
type SavedView struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	OwnerID   uuid.UUID
	TeamID    *uuid.UUID
	Name      string
	Scope     ViewScope
	Filters   EvaluationFilter
	Search    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ViewScopeFilter selects the views visible to one actor.
type ViewScopeFilter struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	TeamID   *uuid.UUID
}
