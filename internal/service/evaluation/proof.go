package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// AttachProof appends a proof to a record. Applicability and state are not
// touched and the record lock does not apply.
func (s *Service) AttachProof(ctx context.Context, input AttachProofInput) (domain.Proof, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Proof{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Proof{}, err
	}

	proof := domain.Proof{
		ID:        uuid.New(),
		RecordID:  input.RecordID,
		TenantID:  id.TenantID,
		Type:      input.Type,
		Comment:   trimOrNil(input.Comment),
		CreatedBy: &id.UserID,
	}
	switch input.Type {
	case domain.ProofTypeFile:
		bucket := domain.ProofBucket
		path := strings.TrimLeft(strings.TrimSpace(*input.StoragePath), "/")
		proof.Bucket = &bucket
		proof.StoragePath = &path
		proof.FileName = trimOrNil(input.FileName)
		proof.FileType = trimOrNil(input.FileType)
		proof.FileSize = input.FileSize
	case domain.ProofTypeLink:
		link := strings.TrimSpace(*input.URL)
		proof.URL = &link
	}

	var created domain.Proof
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.records.Get(txCtx, id.TenantID, input.RecordID); err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		var err error
		created, err = s.proofs.Create(txCtx, proof)
		if err != nil {
			return fmt.Errorf("create proof: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeProof,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"record_id": input.RecordID.String(),
				"type":      created.Type.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Proof{}, err
	}

	s.log.InfoContext(ctx, "proof attached",
		slog.String("proof_id", created.ID.String()),
		slog.String("record_id", input.RecordID.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return created, nil
}

// DetachProof removes a proof and returns it so the caller can release the
// stored file.
func (s *Service) DetachProof(ctx context.Context, proofID uuid.UUID) (domain.Proof, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Proof{}, domain.ErrUnauthorized
	}
	if proofID == uuid.Nil {
		return domain.Proof{}, domain.NewValidationError("proof_id", "required")
	}

	var deleted domain.Proof
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.proofs.Delete(txCtx, id.TenantID, proofID)
		if err != nil {
			return fmt.Errorf("delete proof: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeProof,
			EntityID:   &deleted.ID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"record_id": deleted.RecordID.String()},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Proof{}, err
	}

	if s.cache != nil && deleted.StoragePath != nil {
		if err := s.cache.Invalidate(ctx, urlCacheKey(deleted.TenantID, *deleted.StoragePath)); err != nil {
			s.log.WarnContext(ctx, "proof url cache invalidation failed",
				slog.String("proof_id", deleted.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "proof detached",
		slog.String("proof_id", deleted.ID.String()),
		slog.String("record_id", deleted.RecordID.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return deleted, nil
}

// ResolveProofURL returns a time-limited access URL for a file proof of the
// caller's tenant. Paths with no such proof are reported as not found.
// Cache failures degrade to signing a fresh URL.
func (s *Service) ResolveProofURL(ctx context.Context, storagePath string) (string, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	path := strings.TrimLeft(strings.TrimSpace(storagePath), "/")
	if path == "" {
		return "", domain.NewValidationError("storage_path", "required")
	}

	proof, err := s.proofs.GetFileByPath(ctx, id.TenantID, path)
	if err != nil {
		return "", fmt.Errorf("get proof: %w", err)
	}

	key := urlCacheKey(id.TenantID, path)
	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "proof url cache read failed", slog.String("error", err.Error()))
		}
		s.metrics.IncURLCache(hit)
		if hit {
			return cached, nil
		}
	}

	bucket := domain.ProofBucket
	if proof.Bucket != nil && *proof.Bucket != "" {
		bucket = *proof.Bucket
	}
	signed, _, err := s.signer.SignURL(bucket, path)
	if err != nil {
		return "", fmt.Errorf("sign proof url: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, signed, s.cacheTTL); err != nil {
			s.log.WarnContext(ctx, "proof url cache write failed", slog.String("error", err.Error()))
		}
	}
	return signed, nil
}

func urlCacheKey(tenantID uuid.UUID, path string) string {
	return tenantID.String() + "/" + path
}
