package core

import "context"

// BranchRef identifies one branch of a restaurant by its position in the
// restaurant's branch list.
type BranchRef struct {
	RestaurantID string
	BranchIndex  int
}

// SavedReader exposes a user's bookmarked branches to other domains.
// Discovery depends ONLY on this interface.
type SavedReader interface {
	ListRefs(ctx context.Context, userID string) ([]BranchRef, error)
}

// PreferenceReader exposes profile preferences that influence ranking.
type PreferenceReader interface {
	FavoriteCuisines(ctx context.Context, userID string) ([]string, error)
}
