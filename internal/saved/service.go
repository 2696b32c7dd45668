package saved

import (
	"context"
	"errors"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
)

var ErrInvalidRef = errors.New("invalid branch reference")

// Service manages a user's bookmarked branches. It also implements
// core.SavedReader for the discovery pipeline.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Save(ctx context.Context, userID string, ref core.BranchRef) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	return s.repo.Save(ctx, userID, ref)
}

func (s *Service) Remove(ctx context.Context, userID string, ref core.BranchRef) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, ref)
}

func (s *Service) ListRefs(ctx context.Context, userID string) ([]core.BranchRef, error) {
	return s.repo.ListRefs(ctx, userID)
}

func validateRef(ref core.BranchRef) error {
	if ref.RestaurantID == "" || ref.BranchIndex < 0 {
		return ErrInvalidRef
	}
	return nil
}
