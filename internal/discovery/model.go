package discovery

import (
	"encoding/json"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
	"github.com/alytantawyy/Ehgezli-sub000/internal/geo"
)

// FilterAll is the sentinel the mobile clients send for "no filter".
// It must behave exactly like an absent criterion.
const FilterAll = "all"

// TimeSlot is the canonical bookable-time shape. Only the normalizer
// constructs these; no other code path builds a TimeSlot from raw payloads.
type TimeSlot struct {
	Time           string `json:"time"`
	AvailableSeats *int   `json:"availableSeats,omitempty"`
}

// Branch is one physical location of a restaurant, the unit that holds
// reservation availability.
type Branch struct {
	ID          string          `json:"id"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Coordinates *geo.Coordinate `json:"coordinates,omitempty"`
	Slots       []TimeSlot      `json:"slots"`
	DistanceKm  *float64        `json:"distanceKm,omitempty"`
	IsSaved     bool            `json:"isSaved"`
}

// Restaurant groups branches. IsSaved is an OR over its branches being
// individually saved in the current view.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Cuisine    string   `json:"cuisine"`
	PriceRange string   `json:"priceRange"`
	Branches   []Branch `json:"branches"`
	IsSaved    bool     `json:"isSaved"`
}

// DisplayRow is the flattened unit the UI renders: one row per
// (restaurant, branch) pair, never per restaurant.
type DisplayRow struct {
	Restaurant         Restaurant `json:"restaurant"`
	Branch             Branch     `json:"branch"`
	BranchIndex        int        `json:"branchIndex"`
	IsNearbySuggestion bool       `json:"isNearbySuggestion"`
}

// SavedSet holds the user's bookmarked (restaurant, branchIndex) pairs.
// It only stamps isSaved; it never filters unless saved-only mode is on.
type SavedSet map[core.BranchRef]struct{}

func NewSavedSet(refs []core.BranchRef) SavedSet {
	set := make(SavedSet, len(refs))
	for _, ref := range refs {
		set[ref] = struct{}{}
	}
	return set
}

func (s SavedSet) Contains(restaurantID string, branchIndex int) bool {
	if s == nil {
		return false
	}
	_, ok := s[core.BranchRef{RestaurantID: restaurantID, BranchIndex: branchIndex}]
	return ok
}

// Criteria is the filter configuration record. Empty string and FilterAll
// both mean "criterion absent". A nil MaxDistanceKm disables the distance
// filter.
type Criteria struct {
	Text          string
	City          string
	Cuisine       string
	PriceRange    string
	MaxDistanceKm *float64
	SavedOnly     bool
}

// --------------------------------------------------
// Raw upstream shapes
// --------------------------------------------------

// RawRestaurant is a restaurant record as the data-access layer hands it
// over, before slot normalization.
type RawRestaurant struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Cuisine    string      `json:"cuisine"`
	PriceRange string      `json:"priceRange"`
	Branches   []RawBranch `json:"branches"`
}

// RawBranch carries the slot payload untouched. Historical payloads put at
// least four different shapes in "slots" (plain strings, {time} objects,
// doubly-nested {time:{time}} objects, seat-annotated objects), so entries
// stay raw JSON until the normalizer reconciles them.
type RawBranch struct {
	ID             string            `json:"id"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Coordinates    *geo.Coordinate   `json:"coordinates,omitempty"`
	Slots          []json.RawMessage `json:"slots"`
	AvailableSlots []RawSeatSlot     `json:"availableSlots,omitempty"`
}

// RawSeatSlot is the seat-availability shape some payloads carry instead of
// a slot list.
type RawSeatSlot struct {
	Time  string `json:"time"`
	Seats int    `json:"seats"`
}
