package discovery

import (
	"sort"
	"strings"
)

// PipelineInput is everything Rank needs, already fetched and normalized.
// Saved or Nearby being empty degrades ranking quality; it never blocks
// results.
type PipelineInput struct {
	Restaurants      []Restaurant
	Nearby           []Restaurant
	Saved            SavedSet
	Criteria         Criteria
	FavoriteCuisines []string
}

// Rank flattens restaurants into display rows, stamps saved status, applies
// the AND-combined filters, merges deduplicated nearby suggestions and
// returns the rows in their final stable order. The UI performs no further
// sorting or filtering.
func Rank(in PipelineInput) []DisplayRow {
	rows := flatten(in.Restaurants, in.Saved, false)
	rows = applyFilters(rows, in.Criteria)

	// Nearby suggestions are surfaced by proximity, not by matching the
	// active criteria, so they skip the filters. Restaurants already in the
	// result set are skipped to avoid duplicate cards.
	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		present[row.Restaurant.ID] = true
	}
	for _, row := range flatten(in.Nearby, in.Saved, true) {
		if present[row.Restaurant.ID] {
			continue
		}
		rows = append(rows, row)
	}

	sortRows(rows, in.FavoriteCuisines)
	return rows
}

// flatten explodes every restaurant's branches into one row per branch and
// stamps saved status from the saved set. The restaurant copy on each row
// carries isSaved as an OR over all of its branches.
func flatten(restaurants []Restaurant, saved SavedSet, nearby bool) []DisplayRow {
	var rows []DisplayRow

	for _, r := range restaurants {
		restaurant := r
		restaurant.Branches = make([]Branch, len(r.Branches))
		anySaved := false

		for i, b := range r.Branches {
			branch := b
			branch.IsSaved = saved.Contains(r.ID, i)
			anySaved = anySaved || branch.IsSaved
			restaurant.Branches[i] = branch
		}
		restaurant.IsSaved = anySaved

		for i := range restaurant.Branches {
			rows = append(rows, DisplayRow{
				Restaurant:         restaurant,
				Branch:             restaurant.Branches[i],
				BranchIndex:        i,
				IsNearbySuggestion: nearby,
			})
		}
	}

	return rows
}

func applyFilters(rows []DisplayRow, c Criteria) []DisplayRow {
	filtered := rows[:0:0]
	for _, row := range rows {
		if matches(row, c) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func matches(row DisplayRow, c Criteria) bool {
	if c.Text != "" {
		needle := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(row.Restaurant.Name), needle) &&
			!strings.Contains(strings.ToLower(row.Restaurant.Cuisine), needle) &&
			!strings.Contains(strings.ToLower(row.Branch.City), needle) {
			return false
		}
	}

	if active(c.City) && row.Branch.City != c.City {
		return false
	}
	if active(c.Cuisine) && row.Restaurant.Cuisine != c.Cuisine {
		return false
	}
	if active(c.PriceRange) && row.Restaurant.PriceRange != c.PriceRange {
		return false
	}

	// Unknown distance is exempt, not excluded: unknown is not far.
	if c.MaxDistanceKm != nil && row.Branch.DistanceKm != nil &&
		*row.Branch.DistanceKm > *c.MaxDistanceKm {
		return false
	}

	if c.SavedOnly && !row.Branch.IsSaved {
		return false
	}

	return true
}

func active(criterion string) bool {
	return criterion != "" && criterion != FilterAll
}

// sortRows orders rows by: saved first, then ascending distance with unknown
// distance last, then favorite-cuisine matches, then restaurant name as the
// deterministic tiebreak.
func sortRows(rows []DisplayRow, favoriteCuisines []string) {
	favorites := make(map[string]bool, len(favoriteCuisines))
	for _, cuisine := range favoriteCuisines {
		favorites[cuisine] = true
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		if a.Branch.IsSaved != b.Branch.IsSaved {
			return a.Branch.IsSaved
		}

		da, db := sortDistance(a.Branch.DistanceKm), sortDistance(b.Branch.DistanceKm)
		if da != db {
			return da < db
		}

		fa, fb := favorites[a.Restaurant.Cuisine], favorites[b.Restaurant.Cuisine]
		if fa != fb {
			return fa
		}

		return a.Restaurant.Name < b.Restaurant.Name
	})
}

func sortDistance(d *float64) float64 {
	if d == nil {
		return maxDistance
	}
	return *d
}

// maxDistance stands in for "unknown" when ordering; rows without a computed
// distance sort after every row that has one.
const maxDistance = 1 << 30
