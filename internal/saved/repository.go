package saved

import (
	"context"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
)

// Repository defines the data-access contract for bookmarked branches.
type Repository interface {
	Save(ctx context.Context, userID string, ref core.BranchRef) error
	Remove(ctx context.Context, userID string, ref core.BranchRef) error
	ListRefs(ctx context.Context, userID string) ([]core.BranchRef, error)
}
