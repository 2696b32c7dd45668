package discovery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alytantawyy/Ehgezli-sub000/internal/geo"
	"github.com/alytantawyy/Ehgezli-sub000/internal/timeslot"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /discover
// --------------------------------------------------
// Query params: query, city, cuisine, price_range, max_distance_km,
// saved_only, date, time, party_size, lat, lng. Works anonymously; a valid
// bearer token adds saved stamping and favorite-cuisine ranking.
func (h *Handler) Discover(c *gin.Context) {
	q := Query{
		Now:   time.Now(),
		Date:  c.Query("date"),
		Clock: c.Query("time"),
		Criteria: Criteria{
			Text:       c.Query("query"),
			City:       c.Query("city"),
			Cuisine:    c.Query("cuisine"),
			PriceRange: c.Query("price_range"),
			SavedOnly:  c.Query("saved_only") == "true",
		},
	}

	if raw := c.Query("max_distance_km"); raw != "" && raw != FilterAll {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil || max < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_distance_km"})
			return
		}
		q.Criteria.MaxDistanceKm = &max
	}

	if raw := c.Query("party_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid party_size"})
			return
		}
		q.PartySize = size
	}

	if lat, lng := c.Query("lat"), c.Query("lng"); lat != "" && lng != "" {
		latitude, latErr := strconv.ParseFloat(lat, 64)
		longitude, lngErr := strconv.ParseFloat(lng, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		q.UserCoordinate = &geo.Coordinate{Latitude: latitude, Longitude: longitude}
	}

	// Set by OptionalAuth when a valid token was presented.
	if userID, ok := c.Get("userID"); ok {
		q.UserID, _ = userID.(string)
	}

	rows, err := h.service.Discover(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": rows})
}

// --------------------------------------------------
// GET /discover/picker-default
// --------------------------------------------------
// Pre-fill value for the date/time picker. Presentation only; slot
// generation does not depend on it.
func (h *Handler) PickerDefault(c *gin.Context) {
	t := timeslot.PickerDefault(time.Now())

	c.JSON(http.StatusOK, gin.H{
		"date": t.Format("2006-01-02"),
		"time": t.Format("15:04"),
	})
}
