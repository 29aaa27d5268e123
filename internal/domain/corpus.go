package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a regulatory article with a denormalized copy of its in-force text.
type Article struct {
	ID             uuid.UUID
	TextID         *uuid.UUID
	Number         string
	Title          string
	Reference      *string
	CurrentContent string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ArticleVersion is one node of an article's append-only lineage.
type ArticleVersion struct {
	ID            uuid.UUID
	ArticleID     uuid.UUID
	Sequence      int
	Content       string
	EffectiveDate time.Time
	Vigor         VigorStatus
	SupersedesID  *uuid.UUID
	Notes         *string
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// LegalEffect is a dated edge from a source article to a target article.
type LegalEffect struct {
	ID              uuid.UUID
	SourceArticleID uuid.UUID
	TargetArticleID uuid.UUID
	Type            LegalEffectType
	EffectiveDate   time.Time
}

// RestoreWarning lists later modifications that do not block a restore.
type RestoreWarning struct {
	LaterModifications int
	Effects            []LegalEffect
}

// RestoreResult is the outcome of a successful version restore.
type RestoreResult struct {
	Version    ArticleVersion
	Superseded []uuid.UUID
	Warning    *RestoreWarning
}

// RestoreConflict inspects the legal effects dated strictly after since and
// returns an error for the earliest abrogation, or a warning summarising
// replacements and amendments. Both results are nil when nothing applies.
func RestoreConflict(effects []LegalEffect, since time.Time) (*RestoreWarning, error) {
	var (
		blocking *LegalEffect
		warning  RestoreWarning
	)
	for i := range effects {
		e := effects[i]
		if !e.EffectiveDate.After(since) {
			continue
		}
		switch e.Type {
		case EffectAbrogates:
			if blocking == nil || e.EffectiveDate.Before(blocking.EffectiveDate) {
				blocking = &e
			}
		case EffectReplaces, EffectAmends:
			warning.LaterModifications++
			warning.Effects = append(warning.Effects, e)
		}
	}

	if blocking != nil {
		return nil, &RestoreConflictError{
			EffectType:      blocking.Type,
			EffectDate:      blocking.EffectiveDate,
			SourceArticleID: blocking.SourceArticleID,
		}
	}
	if warning.LaterModifications == 0 {
		return nil, nil
	}
	return &warning, nil
}

// InForce returns the versions currently in force.
func InForce(versions []ArticleVersion) []ArticleVersion {
	var out []ArticleVersion
	for _, v := range versions {
		if v.Vigor == VigorInForce && v.DeletedAt == nil {
			out = append(out, v)
		}
	}
	return out
}
