package evaluation

import (
	"context"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// SetConformity changes the conformity state. It is accepted whatever the
// applicability so automated paths are never blocked.
func (s *Service) SetConformity(ctx context.Context, input SetConformityInput) (domain.EvaluationRecord, error) {
	if !input.State.IsValid() {
		return domain.EvaluationRecord{}, domain.NewValidationError("state", "invalid value")
	}

	state := input.State
	return s.transition(ctx, "state", domain.AuditActionUpdate, input.RecordID, nil,
		func(current domain.EvaluationRecord) (domain.EvaluationRecord, error) {
			return current.Apply(domain.ChangeSet{State: &state})
		})
}

// UpdateRecord applies a general change set (applicability, reason, state,
// comment, impact level) as one transition.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateRecordInput) (domain.EvaluationRecord, error) {
	if err := input.Changes.Validate(); err != nil {
		return domain.EvaluationRecord{}, err
	}

	return s.transition(ctx, "update", domain.AuditActionUpdate, input.RecordID, nil,
		func(current domain.EvaluationRecord) (domain.EvaluationRecord, error) {
			return current.Apply(input.Changes)
		})
}
