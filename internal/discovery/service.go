package discovery

import (
	"context"
	"log"
	"time"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
	"github.com/alytantawyy/Ehgezli-sub000/internal/geo"
	"github.com/alytantawyy/Ehgezli-sub000/internal/timeslot"
)

// Suggestions are pulled from this radius around the user.
const nearbyRadiusKm = 5.0

// Query is one discovery request. Now is supplied by the caller so
// time-dependent slot generation stays deterministic.
type Query struct {
	Now            time.Time
	Date           string // "2006-01-02", empty when the user picked no time
	Clock          string // "HH:MM", empty when the user picked no time
	PartySize      int
	UserID         string // empty for anonymous requests
	UserCoordinate *geo.Coordinate
	Criteria       Criteria
}

type Service struct {
	source RestaurantSource
	saved  core.SavedReader
	prefs  core.PreferenceReader
}

func NewService(
	source RestaurantSource,
	saved core.SavedReader,
	prefs core.PreferenceReader,
) *Service {
	return &Service{
		source: source,
		saved:  saved,
		prefs:  prefs,
	}
}

// Discover runs one full discovery query: fetch, normalize, annotate
// distances, then filter and rank. Saved set, preferences and nearby
// suggestions each degrade to empty when unavailable; only the primary
// restaurant fetch can fail the query.
func (s *Service) Discover(ctx context.Context, q Query) ([]DisplayRow, error) {
	raws, err := s.source.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	fallback := timeslot.DefaultSlots(q.Now)
	if q.Date != "" || q.Clock != "" {
		fallback = timeslot.SlotsForSelection(q.Now, q.Date, q.Clock)
	}

	userCoord := q.UserCoordinate
	if userCoord != nil && !userCoord.Valid() {
		userCoord = nil
	}

	restaurants := s.prepare(raws, fallback, userCoord, q.PartySize)

	var saved SavedSet
	var favorites []string
	if q.UserID != "" {
		refs, err := s.saved.ListRefs(ctx, q.UserID)
		if err != nil {
			log.Printf("discovery: saved set unavailable for user %s: %v", q.UserID, err)
		} else {
			saved = NewSavedSet(refs)
		}

		favorites, err = s.prefs.FavoriteCuisines(ctx, q.UserID)
		if err != nil {
			log.Printf("discovery: preferences unavailable for user %s: %v", q.UserID, err)
			favorites = nil
		}
	}

	var nearby []Restaurant
	if userCoord != nil {
		rawNearby, err := s.source.ListNearby(ctx, *userCoord, nearbyRadiusKm)
		if err != nil {
			log.Printf("discovery: nearby suggestions unavailable: %v", err)
		} else {
			nearby = s.prepare(rawNearby, fallback, userCoord, q.PartySize)
		}
	}

	return Rank(PipelineInput{
		Restaurants:      restaurants,
		Nearby:           nearby,
		Saved:            saved,
		Criteria:         q.Criteria,
		FavoriteCuisines: favorites,
	}), nil
}

func (s *Service) prepare(
	raws []RawRestaurant,
	fallback []string,
	userCoord *geo.Coordinate,
	partySize int,
) []Restaurant {
	restaurants := make([]Restaurant, 0, len(raws))
	for _, raw := range raws {
		r := NormalizeRestaurant(raw, fallback)
		for i := range r.Branches {
			attachDistance(&r.Branches[i], userCoord)
			dropUndersizedSlots(&r.Branches[i], partySize)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants
}

// attachDistance computes the branch distance when both coordinates exist.
// A branch without coordinates keeps no distance at all; zero km means
// co-located, not unknown.
func attachDistance(b *Branch, userCoord *geo.Coordinate) {
	if userCoord == nil || b.Coordinates == nil {
		return
	}
	d := geo.DistanceKm(*userCoord, *b.Coordinates)
	b.DistanceKm = &d
}

// dropUndersizedSlots removes slots that are known to seat fewer people than
// the party. Slots with unknown seat counts are kept.
func dropUndersizedSlots(b *Branch, partySize int) {
	if partySize <= 0 {
		return
	}
	kept := b.Slots[:0:0]
	for _, slot := range b.Slots {
		if slot.AvailableSeats != nil && *slot.AvailableSeats < partySize {
			continue
		}
		kept = append(kept, slot)
	}
	b.Slots = kept
}
