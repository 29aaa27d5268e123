package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type applicabilityRequest struct {
	Applicability domain.Applicability        `json:"applicability"`
	Reason        *domain.NonApplicableReason `json:"reason"`
	ReasonComment *string                     `json:"reasonComment"`
}

type conformityRequest struct {
	State domain.ConformityState `json:"state"`
}

type changeSetRequest struct {
	Applicability *domain.Applicability       `json:"applicability"`
	Reason        *domain.NonApplicableReason `json:"reason"`
	ReasonComment *string                     `json:"reasonComment"`
	State         *domain.ConformityState     `json:"state"`
	Comment       *string                     `json:"comment"`
	ImpactLevel   *domain.ImpactLevel         `json:"impactLevel"`
}

func (c changeSetRequest) toDomain() domain.ChangeSet {
	return domain.ChangeSet{
		Applicability: c.Applicability,
		Reason:        c.Reason,
		ReasonComment: c.ReasonComment,
		State:         c.State,
		Comment:       c.Comment,
		ImpactLevel:   c.ImpactLevel,
	}
}

type bulkRequest struct {
	RecordIDs []uuid.UUID      `json:"recordIds"`
	Changes   changeSetRequest `json:"changes"`
}

type proofRequest struct {
	Type        domain.ProofType `json:"type"`
	StoragePath *string          `json:"storagePath"`
	FileName    *string          `json:"fileName"`
	FileType    *string          `json:"fileType"`
	FileSize    *int64           `json:"fileSize"`
	URL         *string          `json:"url"`
	Comment     *string          `json:"comment"`
}

type actionRequest struct {
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	ResponsibleID   *uuid.UUID            `json:"responsibleId"`
	ResponsibleName *string               `json:"responsibleName"`
	DueDate         *string               `json:"dueDate"`
	Priority        domain.ActionPriority `json:"priority"`
}

type viewRequest struct {
	Name    string                  `json:"name"`
	Scope   domain.ViewScope        `json:"scope"`
	Filters domain.EvaluationFilter `json:"filters"`
	Search  string                  `json:"search"`
}

type versionRequest struct {
	Content       string             `json:"content"`
	EffectiveDate string             `json:"effectiveDate"`
	Notes         *string            `json:"notes"`
	PreviousVigor domain.VigorStatus `json:"previousVigor"`
}

// parseDate accepts a calendar date or an RFC3339 timestamp.
func parseDate(field, raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(field, "must be a date (YYYY-MM-DD)")
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type recordResponse struct {
	ID            string                   `json:"id"`
	SiteID        string                   `json:"siteId"`
	ArticleID     string                   `json:"articleId"`
	Applicability domain.Applicability     `json:"applicability"`
	Reason        *string                  `json:"reason,omitempty"`
	ReasonComment *string                  `json:"reasonComment,omitempty"`
	State         domain.ConformityState   `json:"state"`
	Comment       *string                  `json:"comment,omitempty"`
	ImpactLevel   *string                  `json:"impactLevel,omitempty"`
	Suggestions   domain.SuggestionPayload `json:"suggestions"`
	LockedBy      *string                  `json:"lockedBy,omitempty"`
	LockedAt      *time.Time               `json:"lockedAt,omitempty"`
	UpdatedBy     *string                  `json:"updatedBy,omitempty"`
	UpdatedAt     time.Time                `json:"updatedAt"`
	Article       *articleResponse         `json:"article,omitempty"`
	Proofs        []proofResponse          `json:"proofs,omitempty"`
	Actions       []actionResponse         `json:"actions,omitempty"`
}

type articleResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Title         string  `json:"title"`
	Reference     *string `json:"reference,omitempty"`
	DomainCode    *string `json:"domainCode,omitempty"`
	SubDomainCode *string `json:"subDomainCode,omitempty"`
	TextTitle     *string `json:"textTitle,omitempty"`
	SourceType    *string `json:"sourceType,omitempty"`
}

type proofResponse struct {
	ID          string           `json:"id"`
	RecordID    string           `json:"recordId"`
	Type        domain.ProofType `json:"type"`
	Bucket      *string          `json:"bucket,omitempty"`
	StoragePath *string          `json:"storagePath,omitempty"`
	FileName    *string          `json:"fileName,omitempty"`
	FileType    *string          `json:"fileType,omitempty"`
	FileSize    *int64           `json:"fileSize,omitempty"`
	URL         *string          `json:"url,omitempty"`
	Comment     *string          `json:"comment,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type actionResponse struct {
	ID              string                `json:"id"`
	RecordID        string                `json:"recordId"`
	Title           string                `json:"title"`
	Description     *string               `json:"description,omitempty"`
	ResponsibleID   *string               `json:"responsibleId,omitempty"`
	ResponsibleName *string               `json:"responsibleName,omitempty"`
	DueDate         *string               `json:"dueDate,omitempty"`
	Priority        domain.ActionPriority `json:"priority"`
	Status          domain.ActionStatus   `json:"status"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type auditEntryResponse struct {
	ID        string             `json:"id"`
	ActorID   string             `json:"actorId"`
	Action    domain.AuditAction `json:"action"`
	Changes   map[string]any     `json:"changes"`
	CreatedAt time.Time          `json:"createdAt"`
}

type pageResponse struct {
	Records    []recordResponse `json:"records"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int              `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

type viewResponse struct {
	ID        string                  `json:"id"`
	OwnerID   string                  `json:"ownerId"`
	TeamID    *string                 `json:"teamId,omitempty"`
	Name      string                  `json:"name"`
	Scope     domain.ViewScope        `json:"scope"`
	Filters   domain.EvaluationFilter `json:"filters"`
	Search    string                  `json:"search"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

type appliedViewResponse struct {
	View viewResponse `json:"view"`
	Page pageResponse `json:"page"`
}

type versionResponse struct {
	ID            string             `json:"id"`
	ArticleID     string             `json:"articleId"`
	Sequence      int                `json:"sequence"`
	Content       string             `json:"content"`
	EffectiveDate string             `json:"effectiveDate"`
	Vigor         domain.VigorStatus `json:"vigor"`
	SupersedesID  *string            `json:"supersedesId,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type restoreResponse struct {
	Version    versionResponse  `json:"version"`
	Superseded []string         `json:"superseded"`
	Warning    *warningResponse `json:"warning,omitempty"`
}

type warningResponse struct {
	LaterModifications int              `json:"laterModifications"`
	Effects            []effectResponse `json:"effects"`
}

type effectResponse struct {
	Type            domain.LegalEffectType `json:"type"`
	EffectiveDate   string                 `json:"effectiveDate"`
	SourceArticleID string                 `json:"sourceArticleId"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toRecordResponse(r domain.EvaluationRecord) recordResponse {
	out := recordResponse{
		ID:            r.ID.String(),
		SiteID:        r.SiteID.String(),
		ArticleID:     r.ArticleID.String(),
		Applicability: r.Applicability,
		Reason:        enumPtr(r.Reason),
		ReasonComment: r.ReasonComment,
		State:         r.State,
		Comment:       r.Comment,
		ImpactLevel:   enumPtr(r.ImpactLevel),
		Suggestions:   r.Suggestions,
		LockedBy:      idPtr(r.LockedBy),
		LockedAt:      r.LockedAt,
		UpdatedBy:     idPtr(r.UpdatedBy),
		UpdatedAt:     r.UpdatedAt,
	}
	if a := r.Article; a != nil {
		out.Article = &articleResponse{
			ID:            a.ID.String(),
			Number:        a.Number,
			Title:         a.Title,
			Reference:     a.Reference,
			DomainCode:    a.DomainCode,
			SubDomainCode: a.SubDomainCode,
			TextTitle:     a.TextTitle,
			SourceType:    a.SourceType,
		}
	}
	for _, p := range r.Proofs {
		out.Proofs = append(out.Proofs, toProofResponse(p))
	}
	for _, a := range r.Actions {
		out.Actions = append(out.Actions, toActionResponse(a))
	}
	return out
}

func toRecordResponses(records []domain.EvaluationRecord) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return out
}

func toPageResponse(p domain.EvaluationPage) pageResponse {
	return pageResponse{
		Records:    toRecordResponses(p.Records),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

func toProofResponse(p domain.Proof) proofResponse {
	return proofResponse{
		ID:          p.ID.String(),
		RecordID:    p.RecordID.String(),
		Type:        p.Type,
		Bucket:      p.Bucket,
		StoragePath: p.StoragePath,
		FileName:    p.FileName,
		FileType:    p.FileType,
		FileSize:    p.FileSize,
		URL:         p.URL,
		Comment:     p.Comment,
		CreatedAt:   p.CreatedAt,
	}
}

func toActionResponse(a domain.CorrectiveAction) actionResponse {
	out := actionResponse{
		ID:              a.ID.String(),
		RecordID:        a.RecordID.String(),
		Title:           a.Title,
		Description:     a.Description,
		ResponsibleID:   idPtr(a.ResponsibleID),
		ResponsibleName: a.ResponsibleName,
		Priority:        a.Priority,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
	if a.DueDate != nil {
		d := a.DueDate.Format(time.DateOnly)
		out.DueDate = &d
	}
	return out
}

func toAuditEntryResponse(a domain.AuditRecord) auditEntryResponse {
	return auditEntryResponse{
		ID:        a.ID.String(),
		ActorID:   a.ActorID.String(),
		Action:    a.Action,
		Changes:   a.Changes,
		CreatedAt: a.CreatedAt,
	}
}

func toViewResponse(v domain.SavedView) viewResponse {
	return viewResponse{
		ID:        v.ID.String(),
		OwnerID:   v.OwnerID.String(),
		TeamID:    idPtr(v.TeamID),
		Name:      v.Name,
		Scope:     v.Scope,
		Filters:   v.Filters,
		Search:    v.Search,
		UpdatedAt: v.UpdatedAt,
	}
}

func toVersionResponse(v domain.ArticleVersion) versionResponse {
	return versionResponse{
		ID:            v.ID.String(),
		ArticleID:     v.ArticleID.String(),
		Sequence:      v.Sequence,
		Content:       v.Content,
		EffectiveDate: v.EffectiveDate.Format(time.DateOnly),
		Vigor:         v.Vigor,
		SupersedesID:  idPtr(v.SupersedesID),
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
	}
}

func toRestoreResponse(res domain.RestoreResult) restoreResponse {
	out := restoreResponse{
		Version:    toVersionResponse(res.Version),
		Superseded: make([]string, 0, len(res.Superseded)),
	}
	for _, id := range res.Superseded {
		out.Superseded = append(out.Superseded, id.String())
	}
	if w := res.Warning; w != nil {
		out.Warning = &warningResponse{LaterModifications: w.LaterModifications}
		for _, e := range w.Effects {
			out.Warning.Effects = append(out.Warning.Effects, effectResponse{
				Type:            e.Type,
				EffectiveDate:   e.EffectiveDate.Format(time.DateOnly),
				SourceArticleID: e.SourceArticleID.String(),
			})
		}
	}
	return out
}

func idPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
