package evaluation

import (
	"context"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// SetApplicability changes the applicability of a record. NON_APPLICABLE
// requires a reason (supplied or already on the record) and AUTRE requires a
// comment. The conformity state is kept as history.
func (s *Service) SetApplicability(ctx context.Context, input SetApplicabilityInput) (domain.EvaluationRecord, error) {
	if !input.Applicability.IsValid() {
		return domain.EvaluationRecord{}, domain.NewValidationError("applicability", "invalid value")
	}

	cs := input.changeSet()
	return s.transition(ctx, "applicability", domain.AuditActionUpdate, input.RecordID, nil,
		func(current domain.EvaluationRecord) (domain.EvaluationRecord, error) {
			return current.Apply(cs)
		})
}
