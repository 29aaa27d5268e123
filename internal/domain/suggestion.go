package domain

import (
	"encoding/json"
	"time"
)

// SuggestionKind names a suggestion slot on an evaluation record.
type SuggestionKind string

const (
	SuggestionApplicability SuggestionKind = "applicability"
	SuggestionState         SuggestionKind = "state"
)

func (k SuggestionKind) String() string { return string(k) }

func (k SuggestionKind) IsValid() bool {
	return k == SuggestionApplicability || k == SuggestionState
}

// SuggestionStatus is the lifecycle of one suggestion slot.
type SuggestionStatus string

const (
	SuggestionPending SuggestionStatus = "pending"
	SuggestionApplied SuggestionStatus = "applied"
	SuggestionIgnored SuggestionStatus = "ignored"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionPending, SuggestionApplied, SuggestionIgnored:
		return true
	}
	return false
}

// Suggestion is a machine-produced verdict for one slot.
// Value holds an Applicability for the applicability slot and a
// ConformityState for the state slot.
type Suggestion struct {
	Value      string               `json:"value"`
	Reason     *NonApplicableReason `json:"motif,omitempty"`
	Comment    *string              `json:"commentaire,omitempty"`
	Label      string               `json:"label,omitempty"`
	Rationale  string               `json:"reason,omitempty"`
	Confidence *float64             `json:"confidence,omitempty"`
	Status     SuggestionStatus     `json:"status"`
	UpdatedAt  *time.Time           `json:"updatedAt,omitempty"`
	Sources    []string             `json:"sources,omitempty"`
}

// SuggestionPayload holds at most one suggestion per kind.
type SuggestionPayload struct {
	Applicability *Suggestion `json:"applicability,omitempty"`
	State         *Suggestion `json:"state,omitempty"`
}

// Slot returns the suggestion of the given kind, or nil.
func (p SuggestionPayload) Slot(kind SuggestionKind) *Suggestion {
	switch kind {
	case SuggestionApplicability:
		return p.Applicability
	case SuggestionState:
		return p.State
	}
	return nil
}

// IsEmpty reports whether no slot is present.
func (p SuggestionPayload) IsEmpty() bool {
	return p.Applicability == nil && p.State == nil
}

// WithStatus returns a copy of p where the slot of kind has the given status
// and timestamp. The receiver is not modified.
func (p SuggestionPayload) WithStatus(kind SuggestionKind, status SuggestionStatus, at time.Time) SuggestionPayload {
	out := p
	if s := p.Slot(kind); s != nil {
		cp := *s
		cp.Status = status
		ts := at.UTC()
		cp.UpdatedAt = &ts
		switch kind {
		case SuggestionApplicability:
			out.Applicability = &cp
		case SuggestionState:
			out.State = &cp
		}
	}
	return out
}

// Merge overlays incoming slots onto p, resetting each written slot to pending.
// Slots absent from incoming are kept as they are.
func (p SuggestionPayload) Merge(incoming SuggestionPayload, at time.Time) SuggestionPayload {
	out := p
	ts := at.UTC()
	if incoming.Applicability != nil {
		cp := *incoming.Applicability
		cp.Status = SuggestionPending
		cp.UpdatedAt = &ts
		out.Applicability = &cp
	}
	if incoming.State != nil {
		cp := *incoming.State
		cp.Status = SuggestionPending
		cp.UpdatedAt = &ts
		out.State = &cp
	}
	return out
}

// ChangeSet converts the slot of kind into the mutation it proposes.
// For a NON_APPLICABLE suggestion the reason falls back to the current
// record's reason and the comment to the current comment.
func (p SuggestionPayload) ChangeSet(kind SuggestionKind, current EvaluationRecord) (ChangeSet, error) {
	s := p.Slot(kind)
	if s == nil {
		return ChangeSet{}, NewValidationError("suggestion", "no suggestion of this kind")
	}
	if s.Status != SuggestionPending {
		return ChangeSet{}, NewValidationError("suggestion", "suggestion already "+s.Status.String())
	}

	switch kind {
	case SuggestionState:
		state := ConformityState(s.Value)
		return ChangeSet{State: &state}, nil
	case SuggestionApplicability:
		value := Applicability(s.Value)
		if value == ApplicabilityApplicable {
			return ChangeSet{Applicability: &value}, nil
		}

		reason := s.Reason
		if reason == nil {
			reason = current.Reason
		}
		if reason == nil {
			return ChangeSet{}, ErrIncompleteSuggestion
		}

		comment := s.Comment
		if comment == nil || *comment == "" {
			comment = current.ReasonComment
		}
		if *reason == ReasonOther && trimOrNil(comment) == nil {
			return ChangeSet{}, ErrIncompleteSuggestion
		}

		r := *reason
		cs := ChangeSet{Applicability: &value, Reason: &r}
		if comment != nil {
			c := *comment
			cs.ReasonComment = &c
		}
		return cs, nil
	}
	return ChangeSet{}, NewValidationError("kind", "invalid value")
}

// ParseSuggestionPayload decodes a payload written by the upstream producer.
// Malformed input yields an empty payload, unknown fields are dropped, values
// are coerced to the closest valid enum and unknown statuses become pending.
func ParseSuggestionPayload(raw []byte) SuggestionPayload {
	var doc map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &doc) != nil {
		return SuggestionPayload{}
	}

	var out SuggestionPayload
	if s := parseSlot(doc["applicability"]); s != nil {
		if s.Value != string(ApplicabilityNonApplicable) {
			s.Value = string(ApplicabilityApplicable)
		}
		if s.Value == string(ApplicabilityApplicable) {
			s.Reason = nil
		}
		out.Applicability = s
	}
	if s := parseSlot(doc["state"]); s != nil {
		s.Reason = nil
		s.Comment = nil
		switch ConformityState(s.Value) {
		case StateNonCompliant, StateNotEvaluated:
		default:
			s.Value = string(StateCompliant)
		}
		out.State = s
	}
	return out
}

// Raw encodes the payload for storage. An empty payload encodes as "{}".
func (p SuggestionPayload) Raw() []byte {
	b, err := json.Marshal(p)
	if err != nil {
		return []byte("{}")
	}
	return b
}

func parseSlot(raw json.RawMessage) *Suggestion {
	var fields map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &fields) != nil || fields == nil {
		return nil
	}

	s := &Suggestion{Status: SuggestionPending}
	if v, ok := fields["value"].(string); ok {
		s.Value = v
	}
	if v, ok := fields["motif"].(string); ok {
		if reason := NonApplicableReason(v); reason.IsValid() {
			s.Reason = &reason
		}
	}
	if v, ok := fields["commentaire"].(string); ok {
		s.Comment = &v
	}
	if v, ok := fields["label"].(string); ok {
		s.Label = v
	}
	if v, ok := fields["reason"].(string); ok {
		s.Rationale = v
	}
	if v, ok := fields["confidence"].(float64); ok {
		s.Confidence = &v
	}
	if v, ok := fields["status"].(string); ok && SuggestionStatus(v).IsValid() {
		s.Status = SuggestionStatus(v)
	}
	if v, ok := fields["updatedAt"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			s.UpdatedAt = &ts
		}
	}
	if list, ok := fields["sources"].([]any); ok {
		for _, item := range list {
			if src, ok := item.(string); ok {
				s.Sources = append(s.Sources, src)
			}
		}
	}
	return s
}
