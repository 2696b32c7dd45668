package timeslot

import (
	"regexp"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"

	slotStep = 30 * time.Minute
)

// Late-night window: requests landing here get anchored to noon of the next
// calendar day instead of now+2h, so we never surface a 1 AM slot.
const (
	lateNightStartHour = 22
	earlyMorningEndHour = 6
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// IsClock reports whether s is a zero-padded 24h "HH:MM" string.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// DefaultSlots returns the three candidate reservation times around the
// "smart" anchor for now: anchor-30m, anchor, anchor+30m, each formatted
// as 24h "HH:MM".
//
// The anchor is now+2h with minutes floored to the nearest half hour, except
// late at night (22:00-06:00) where it becomes noon of the next calendar day.
func DefaultSlots(now time.Time) []string {
	anchor := defaultAnchor(now)

	return []string{
		anchor.Add(-slotStep).Format(clockLayout),
		anchor.Format(clockLayout),
		anchor.Add(slotStep).Format(clockLayout),
	}
}

// SlotsAt returns three ascending slots starting at the user-chosen time t:
// t, t+30m, t+60m. A selection in the past is discarded and the smart
// default window for now is returned instead.
func SlotsAt(now, t time.Time) []string {
	if t.Before(now) {
		return DefaultSlots(now)
	}

	return []string{
		t.Format(clockLayout),
		t.Add(slotStep).Format(clockLayout),
		t.Add(2 * slotStep).Format(clockLayout),
	}
}

// SlotsForSelection parses a user-supplied "2006-01-02" date and "HH:MM"
// time and delegates to SlotsAt. Unparsable input falls back to the smart
// default window; a bad selection must never fail the request.
func SlotsForSelection(now time.Time, date, clock string) []string {
	t, err := combine(date, clock, now.Location())
	if err != nil {
		return DefaultSlots(now)
	}
	return SlotsAt(now, t)
}

// PickerDefault returns the date/time a reservation picker should be
// pre-filled with, based on the part of day:
//
//	before 11:00  -> 13:00 today (lunch)
//	11:00-15:00   -> now+2h, capped at 18:00
//	15:00-20:00   -> now+2h, capped at 21:00
//	20:00-22:00   -> 21:00 today
//	22:00 onward  -> 13:00 tomorrow
//
// Minutes are rounded up to the next half hour. This is presentation
// pre-fill only; slot generation uses DefaultSlots/SlotsAt.
func PickerDefault(now time.Time) time.Time {
	hour := now.Hour()

	switch {
	case hour < 11:
		return atClock(now, 13, 0)
	case hour < 15:
		return capAt(roundUpHalfHour(now.Add(2*time.Hour)), atClock(now, 18, 0))
	case hour < 20:
		return capAt(roundUpHalfHour(now.Add(2*time.Hour)), atClock(now, 21, 0))
	case hour < lateNightStartHour:
		return atClock(now, 21, 0)
	default:
		return atClock(now.AddDate(0, 0, 1), 13, 0)
	}
}

func defaultAnchor(now time.Time) time.Time {
	if now.Hour() >= lateNightStartHour || now.Hour() < earlyMorningEndHour {
		next := now.AddDate(0, 0, 1)
		return atClock(next, 12, 0)
	}
	return floorHalfHour(now.Add(2 * time.Hour))
}

func floorHalfHour(t time.Time) time.Time {
	minute := 0
	if t.Minute() >= 30 {
		minute = 30
	}
	return atClock(t, t.Hour(), minute)
}

func roundUpHalfHour(t time.Time) time.Time {
	if t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return atClock(t, t.Hour(), 0)
	}
	if t.Minute() < 30 || (t.Minute() == 30 && t.Second() == 0 && t.Nanosecond() == 0) {
		return atClock(t, t.Hour(), 30)
	}
	next := t.Add(time.Hour)
	return atClock(next, next.Hour(), 0)
}

func capAt(t, limit time.Time) time.Time {
	if t.After(limit) {
		return limit
	}
	return t
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		hour, minute, 0, 0,
		day.Location(),
	)
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, loc)
}
