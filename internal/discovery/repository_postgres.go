package discovery

import (
	"context"
	"encoding/json"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alytantawyy/Ehgezli-sub000/internal/geo"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `
	r.id, r.name, r.cuisine_type, r.price_range,
	b.id, b.address, b.city, b.latitude, b.longitude,
	b.slots, b.available_slots
`

func (r *PostgresRepository) ListRestaurants(
	ctx context.Context,
) ([]RawRestaurant, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants r
		JOIN branches b ON b.restaurant_id = r.id
		WHERE r.status = 'approved'
		ORDER BY r.id, b.branch_index
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

// ListNearby returns every approved restaurant that has at least one branch
// inside a bounding box around center. The box is a coarse degree-window
// approximation of radiusKm; ranking orders by exact haversine distance
// afterwards, so over-fetching at the corners is harmless.
func (r *PostgresRepository) ListNearby(
	ctx context.Context,
	center geo.Coordinate,
	radiusKm float64,
) ([]RawRestaurant, error) {

	latDelta := radiusKm / 111.0
	lonScale := math.Cos(center.Latitude * math.Pi / 180)
	if lonScale < 0.01 {
		lonScale = 0.01
	}
	lonDelta := radiusKm / (111.0 * lonScale)

	rows, err := r.db.Query(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants r
		JOIN branches b ON b.restaurant_id = r.id
		WHERE r.status = 'approved'
		  AND EXISTS (
			SELECT 1 FROM branches nb
			WHERE nb.restaurant_id = r.id
			  AND nb.latitude  BETWEEN $1 AND $2
			  AND nb.longitude BETWEEN $3 AND $4
		  )
		ORDER BY r.id, b.branch_index
	`,
		center.Latitude-latDelta, center.Latitude+latDelta,
		center.Longitude-lonDelta, center.Longitude+lonDelta,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

// collectRestaurants groups the joined rows back into restaurants. Rows are
// ordered by restaurant id, branch index.
func collectRestaurants(rows pgx.Rows) ([]RawRestaurant, error) {
	var restaurants []RawRestaurant
	var current *RawRestaurant

	for rows.Next() {
		var (
			restaurantID, name, cuisine, priceRange string
			branchID, address, city                 string
			latitude, longitude                     *float64
			slotsPayload, availablePayload          []byte
		)

		if err := rows.Scan(
			&restaurantID, &name, &cuisine, &priceRange,
			&branchID, &address, &city, &latitude, &longitude,
			&slotsPayload, &availablePayload,
		); err != nil {
			return nil, err
		}

		if current == nil || current.ID != restaurantID {
			restaurants = append(restaurants, RawRestaurant{
				ID:         restaurantID,
				Name:       name,
				Cuisine:    cuisine,
				PriceRange: priceRange,
			})
			current = &restaurants[len(restaurants)-1]
		}

		branch := RawBranch{
			ID:      branchID,
			Address: address,
			City:    city,
		}
		if latitude != nil && longitude != nil {
			branch.Coordinates = &geo.Coordinate{
				Latitude:  *latitude,
				Longitude: *longitude,
			}
		}

		// Slot payloads keep whatever shape the writer stored; the
		// normalizer reconciles them. An unreadable payload degrades to no
		// slots rather than failing the whole listing.
		if len(slotsPayload) > 0 {
			_ = json.Unmarshal(slotsPayload, &branch.Slots)
		}
		if len(availablePayload) > 0 {
			_ = json.Unmarshal(availablePayload, &branch.AvailableSlots)
		}

		current.Branches = append(current.Branches, branch)
	}

	return restaurants, rows.Err()
}
