package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemActorID is the actor recorded for writes made by background
// producers rather than by a user.
var SystemActorID = uuid.Nil

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
