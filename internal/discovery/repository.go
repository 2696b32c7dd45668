package discovery

import (
	"context"

	"github.com/alytantawyy/Ehgezli-sub000/internal/geo"
)

// RestaurantSource is the data-access contract the discovery service
// depends on.
type RestaurantSource interface {
	// ListRestaurants returns every bookable restaurant with its branches
	// and their slot payloads untouched.
	ListRestaurants(ctx context.Context) ([]RawRestaurant, error)

	// ListNearby returns restaurants having at least one branch within
	// radiusKm of center.
	ListNearby(
		ctx context.Context,
		center geo.Coordinate,
		radiusKm float64,
	) ([]RawRestaurant, error)
}
