package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProofBucket is the storage bucket holding uploaded proof files.
const ProofBucket = "regulatory_proofs"

// Proof is evidence attached to an evaluation record.
type Proof struct {
	ID          uuid.UUID
	RecordID    uuid.UUID
	TenantID    uuid.UUID
	Type        ProofType
	Bucket      *string
	StoragePath *string
	FileName    *string
	FileType    *string
	FileSize    *int64
	URL         *string
	Comment     *string
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
}

// CorrectiveAction is a remediation task spawned from an evaluation record.
type CorrectiveAction struct {
	ID              uuid.UUID
	RecordID        uuid.UUID
	TenantID        uuid.UUID
	Title           string
	Description     *string
	ResponsibleID   *uuid.UUID
	ResponsibleName *string
	DueDate         *time.Time
	Priority        ActionPriority
	Status          ActionStatus
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
