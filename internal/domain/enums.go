package domain

// Applicability states whether an article's obligations apply to a site.
type Applicability string

const (
	ApplicabilityApplicable    Applicability = "APPLICABLE"
	ApplicabilityNonApplicable Applicability = "NON_APPLICABLE"
)

func (a Applicability) String() string { return string(a) }

func (a Applicability) IsValid() bool {
	switch a {
	case ApplicabilityApplicable, ApplicabilityNonApplicable:
		return true
	}
	return false
}

// NonApplicableReason is the enumerated justification for a NON_APPLICABLE record.
type NonApplicableReason string

const (
	ReasonOutOfActivity  NonApplicableReason = "HORS_ACTIVITE"
	ReasonNotOnSite      NonApplicableReason = "NON_PRESENT_SUR_SITE"
	ReasonBelowThreshold NonApplicableReason = "VOLUME_SEUIL_NON_ATTEINT"
	ReasonNotClassified  NonApplicableReason = "NON_CLASSE"
	ReasonProject        NonApplicableReason = "PROJET"
	ReasonOther          NonApplicableReason = "AUTRE"
)

func (r NonApplicableReason) String() string { return string(r) }

func (r NonApplicableReason) IsValid() bool {
	switch r {
	case ReasonOutOfActivity, ReasonNotOnSite, ReasonBelowThreshold,
		ReasonNotClassified, ReasonProject, ReasonOther:
		return true
	}
	return false
}

// ConformityState records whether a site satisfies an applicable article.
type ConformityState string

const (
	StateCompliant    ConformityState = "Conforme"
	StateNonCompliant ConformityState = "Non_conforme"
	StateNotEvaluated ConformityState = "Non_evalue"
)

func (s ConformityState) String() string { return string(s) }

func (s ConformityState) IsValid() bool {
	switch s {
	case StateCompliant, StateNonCompliant, StateNotEvaluated:
		return true
	}
	return false
}

// ImpactLevel grades the operational impact of an article on a site.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "faible"
	ImpactMedium   ImpactLevel = "moyen"
	ImpactHigh     ImpactLevel = "fort"
	ImpactCritical ImpactLevel = "critique"
)

func (l ImpactLevel) String() string { return string(l) }

func (l ImpactLevel) IsValid() bool {
	switch l {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return true
	}
	return false
}

// VigorStatus tells whether an article version is the legally effective text.
type VigorStatus string

const (
	VigorInForce    VigorStatus = "in_force"
	VigorSuperseded VigorStatus = "superseded"
	VigorAbrogated  VigorStatus = "abrogated"
	VigorSuspended  VigorStatus = "suspended"
)

func (v VigorStatus) String() string { return string(v) }

func (v VigorStatus) IsValid() bool {
	switch v {
	case VigorInForce, VigorSuperseded, VigorAbrogated, VigorSuspended:
		return true
	}
	return false
}

// LegalEffectType is the kind of relationship between two articles.
type LegalEffectType string

const (
	EffectAbrogates LegalEffectType = "abrogates"
	EffectReplaces  LegalEffectType = "replaces"
	EffectAmends    LegalEffectType = "amends"
)

func (t LegalEffectType) String() string { return string(t) }

func (t LegalEffectType) IsValid() bool {
	switch t {
	case EffectAbrogates, EffectReplaces, EffectAmends:
		return true
	}
	return false
}

// ProofType distinguishes stored files from external links.
type ProofType string

const (
	ProofTypeFile ProofType = "FILE"
	ProofTypeLink ProofType = "EXTERNAL_LINK"
)

func (t ProofType) String() string { return string(t) }

func (t ProofType) IsValid() bool {
	return t == ProofTypeFile || t == ProofTypeLink
}

// ActionPriority ranks corrective actions.
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "haute"
	PriorityMedium ActionPriority = "moyenne"
	PriorityLow    ActionPriority = "basse"
)

func (p ActionPriority) String() string { return string(p) }

func (p ActionPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ActionStatus tracks the progress of a corrective action.
type ActionStatus string

const (
	ActionTodo       ActionStatus = "a_faire"
	ActionInProgress ActionStatus = "en_cours"
	ActionDone       ActionStatus = "terminee"
	ActionCancelled  ActionStatus = "annulee"
)

func (s ActionStatus) String() string { return string(s) }

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionTodo, ActionInProgress, ActionDone, ActionCancelled:
		return true
	}
	return false
}

// ViewScope controls who can see a saved view.
type ViewScope string

const (
	ViewScopeUser   ViewScope = "user"
	ViewScopeTeam   ViewScope = "team"
	ViewScopeTenant ViewScope = "tenant"
)

func (s ViewScope) String() string { return string(s) }

func (s ViewScope) IsValid() bool {
	switch s {
	case ViewScopeUser, ViewScopeTeam, ViewScopeTenant:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeEvaluation     EntityType = "EVALUATION"
	EntityTypeProof          EntityType = "PROOF"
	EntityTypeAction         EntityType = "ACTION"
	EntityTypeArticleVersion EntityType = "ARTICLE_VERSION"
	EntityTypeSavedView      EntityType = "SAVED_VIEW"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeEvaluation, EntityTypeProof, EntityTypeAction,
		EntityTypeArticleVersion, EntityTypeSavedView:
		return true
	}
	return false
}

// AuditAction identifies the type of mutation (used in audit logs).
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionBulk    AuditAction = "BULK_UPDATE"
	AuditActionApply   AuditAction = "APPLY_SUGGESTION"
	AuditActionIgnore  AuditAction = "IGNORE_SUGGESTION"
	AuditActionLock    AuditAction = "LOCK"
	AuditActionUnlock  AuditAction = "UNLOCK"
	AuditActionRestore AuditAction = "RESTORE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionBulk,
		AuditActionApply, AuditActionIgnore, AuditActionLock, AuditActionUnlock,
		AuditActionRestore:
		return true
	}
	return false
}
