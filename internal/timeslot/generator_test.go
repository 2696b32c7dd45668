package timeslot

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 14, hour, minute, 0, 0, time.UTC)
}

// --------------------------------------------------
// DefaultSlots
// --------------------------------------------------

func TestDefaultSlots_WindowShape(t *testing.T) {
	slots := DefaultSlots(at(13, 12))

	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !IsClock(s) {
			t.Errorf("slot %q is not HH:MM", s)
		}
	}

	// 13:12 + 2h = 15:12, floored to 15:00
	want := []string{"14:30", "15:00", "15:30"}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestDefaultSlots_FloorsToHalfHour(t *testing.T) {
	// 09:45 + 2h = 11:45, floored to 11:30
	slots := DefaultSlots(at(9, 45))

	want := []string{"11:00", "11:30", "12:00"}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestDefaultSlots_LateNightRollsToNextNoon(t *testing.T) {
	now := at(23, 10)
	slots := DefaultSlots(now)

	want := []string{"11:30", "12:00", "12:30"}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestDefaultSlots_EarlyMorningRollsToNextNoon(t *testing.T) {
	slots := DefaultSlots(at(2, 30))

	if slots[1] != "12:00" {
		t.Errorf("middle slot = %q, want 12:00", slots[1])
	}
}

// --------------------------------------------------
// SlotsAt / SlotsForSelection
// --------------------------------------------------

func TestSlotsAt_AscendingFromSelection(t *testing.T) {
	now := at(12, 0)
	chosen := at(19, 0)

	slots := SlotsAt(now, chosen)

	want := []string{"19:00", "19:30", "20:00"}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestSlotsAt_PastSelectionFallsBackToDefault(t *testing.T) {
	now := at(12, 0)
	stale := at(9, 0)

	got := SlotsAt(now, stale)
	want := DefaultSlots(now)

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %q, want default %q", i, got[i], want[i])
		}
	}
}

func TestSlotsForSelection_UnparsableFallsBackToDefault(t *testing.T) {
	now := at(12, 0)

	got := SlotsForSelection(now, "not-a-date", "7pm")
	want := DefaultSlots(now)

	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %q, want default %q", i, got[i], want[i])
		}
	}
}

func TestSlotsForSelection_ValidSelection(t *testing.T) {
	now := at(12, 0)

	got := SlotsForSelection(now, "2025-03-14", "20:30")

	want := []string{"20:30", "21:00", "21:30"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// --------------------------------------------------
// PickerDefault
// --------------------------------------------------

func TestPickerDefault_Table(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"morning pre-fills lunch", at(9, 0), at(13, 0)},
		{"lunchtime is now plus two hours", at(11, 10), at(13, 30)},
		{"late lunch rounds up", at(14, 50), at(17, 0)},
		{"afternoon is now plus two hours", at(16, 5), at(18, 30)},
		{"afternoon capped at nine", at(19, 40), at(21, 0)},
		{"evening pinned to nine", at(20, 30), at(21, 0)},
		{"late night rolls to tomorrow lunch", at(22, 15),
			time.Date(2025, time.March, 15, 13, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		if got := PickerDefault(tc.now); !got.Equal(tc.want) {
			t.Errorf("%s: PickerDefault(%v) = %v, want %v",
				tc.name, tc.now.Format("15:04"), got, tc.want)
		}
	}
}

func TestPickerDefault_RoundsUpToHalfHour(t *testing.T) {
	// 11:05 + 2h = 13:05, rounded up to 13:30
	got := PickerDefault(at(11, 5))
	if got.Minute() != 30 || got.Hour() != 13 {
		t.Errorf("expected 13:30, got %v", got.Format("15:04"))
	}
}
