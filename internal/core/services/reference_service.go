package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
)

// referenceService implements ReferenceSvcFacade for one of the parallel
// reference collections; the same implementation backs categories, payment
// methods and amount types, each with its own repository.
type referenceService struct {
	kind domain.ReferenceKind
	repo portsrepo.ReferenceRepository
}

// NewReferenceService creates a reference-data service for one collection.
func NewReferenceService(kind domain.ReferenceKind, repo portsrepo.ReferenceRepository) *referenceService {
	return &referenceService{kind: kind, repo: repo}
}

func (s *referenceService) Create(ctx context.Context, userID, name string) (*domain.Reference, error) {
	normalized := utils.NormalizeName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	ref := domain.Reference{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   normalized,
		Status: domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Save(ctx, ref); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}
	return &ref, nil
}

func (s *referenceService) Rename(ctx context.Context, userID, refID, name string) (*domain.Reference, error) {
	normalized := utils.NormalizeName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	ref, err := s.repo.Rename(ctx, userID, refID, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to rename %s %s: %w", s.kind, refID, err)
	}
	return ref, nil
}

func (s *referenceService) SetStatus(ctx context.Context, userID, refID string, status domain.Status) (*domain.Reference, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	ref, err := s.repo.SetStatus(ctx, userID, refID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to set status on %s %s: %w", s.kind, refID, err)
	}
	return ref, nil
}

func (s *referenceService) Remove(ctx context.Context, userID, refID string) error {
	if err := s.repo.Delete(ctx, userID, refID); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", s.kind, refID, err)
	}
	return nil
}

func (s *referenceService) List(ctx context.Context, userID string) ([]domain.Reference, error) {
	refs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.kind, err)
	}
	if refs == nil {
		refs = []domain.Reference{}
	}
	return refs, nil
}
