package discovery

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Upstream slot times arrive zero-padded or not; anything else is corrupt.
var looseClockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// NormalizeBranch reconciles a raw branch into the one canonical shape every
// downstream consumer sees. fallback holds the generated candidate times to
// synthesize when the payload carries no usable slots at all.
//
// Rules, in order, each a no-op if the prior one produced data:
//  1. decode "slots" entries (strings, {time}, nested {time:{time}},
//     seat-annotated objects), dropping anything unresolvable
//  2. synthesize from "availableSlots" seat data
//  3. synthesize from the generated fallback times
//
// A corrupt entry is dropped, never defaulted: a broken payload must not
// silently become a bookable midnight slot.
func NormalizeBranch(raw RawBranch, fallback []string) Branch {
	slots := make([]TimeSlot, 0, len(raw.Slots))

	for _, entry := range raw.Slots {
		if slot, ok := decodeSlot(entry); ok {
			slots = append(slots, slot)
		}
	}

	if len(slots) == 0 {
		for _, seat := range raw.AvailableSlots {
			clock, ok := canonicalClock(seat.Time)
			if !ok {
				continue
			}
			slot := TimeSlot{Time: clock}
			if seat.Seats >= 0 {
				seats := seat.Seats
				slot.AvailableSeats = &seats
			}
			slots = append(slots, slot)
		}
	}

	if len(slots) == 0 {
		for _, t := range fallback {
			if clock, ok := canonicalClock(t); ok {
				slots = append(slots, TimeSlot{Time: clock})
			}
		}
	}

	coords := raw.Coordinates
	if coords != nil && !coords.Valid() {
		coords = nil
	}

	return Branch{
		ID:          raw.ID,
		Address:     raw.Address,
		City:        raw.City,
		Coordinates: coords,
		Slots:       slots,
	}
}

// NormalizeRestaurant normalizes every branch of a raw restaurant.
func NormalizeRestaurant(raw RawRestaurant, fallback []string) Restaurant {
	branches := make([]Branch, 0, len(raw.Branches))
	for _, b := range raw.Branches {
		branches = append(branches, NormalizeBranch(b, fallback))
	}

	return Restaurant{
		ID:         raw.ID,
		Name:       raw.Name,
		Cuisine:    raw.Cuisine,
		PriceRange: raw.PriceRange,
		Branches:   branches,
	}
}

// rawSlotObject covers the object-shaped slot variants: canonical
// {time, availableSeats} and the historical nested {time:{time}} defect.
type rawSlotObject struct {
	Time           json.RawMessage `json:"time"`
	AvailableSeats *int            `json:"availableSeats"`
}

type nestedTime struct {
	Time string `json:"time"`
}

func decodeSlot(entry json.RawMessage) (TimeSlot, bool) {
	// Plain string entry.
	var s string
	if err := json.Unmarshal(entry, &s); err == nil {
		clock, ok := canonicalClock(s)
		return TimeSlot{Time: clock}, ok
	}

	var obj rawSlotObject
	if err := json.Unmarshal(entry, &obj); err != nil || len(obj.Time) == 0 {
		return TimeSlot{}, false
	}

	// "time" is either a string or the doubly-nested {time:{time}} shape.
	var timeStr string
	if err := json.Unmarshal(obj.Time, &timeStr); err != nil {
		var nested nestedTime
		if err := json.Unmarshal(obj.Time, &nested); err != nil {
			return TimeSlot{}, false
		}
		timeStr = nested.Time
	}

	clock, ok := canonicalClock(timeStr)
	if !ok {
		return TimeSlot{}, false
	}

	slot := TimeSlot{Time: clock}
	if obj.AvailableSeats != nil && *obj.AvailableSeats >= 0 {
		seats := *obj.AvailableSeats
		slot.AvailableSeats = &seats
	}
	return slot, true
}

// canonicalClock validates a time-of-day string and zero-pads it to the
// canonical "HH:MM" form.
func canonicalClock(s string) (string, bool) {
	m := looseClockPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
