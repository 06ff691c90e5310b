package usecase

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hour(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}

func TestPartitionSlotsSingleDay(t *testing.T) {
	slots, err := PartitionSlots(
		date(2026, 3, 2), date(2026, 3, 2),
		hour(9, 0), hour(11, 0),
		30, time.UTC,
	)
	if err != nil {
		t.Fatalf("PartitionSlots returned error: %v", err)
	}

	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}

	first := slots[0]
	if first.Start.Hour() != 9 || first.Start.Minute() != 0 {
		t.Errorf("first slot starts at %v, want 09:00", first.Start)
	}

	last := slots[3]
	if last.End.Hour() != 11 || last.End.Minute() != 0 {
		t.Errorf("last slot ends at %v, want 11:00", last.End)
	}
}

func TestPartitionSlotsDropsRemainder(t *testing.T) {
	// 70 minutes of window with 30-minute slots: the trailing 10 minutes
	// must not produce a short slot.
	slots, err := PartitionSlots(
		date(2026, 3, 2), date(2026, 3, 2),
		hour(9, 0), hour(10, 10),
		30, time.UTC,
	)
	if err != nil {
		t.Fatalf("PartitionSlots returned error: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if end := slots[1].End; end.Hour() != 10 || end.Minute() != 0 {
		t.Errorf("last slot ends at %v, want 10:00", end)
	}
}

func TestPartitionSlotsMultipleDays(t *testing.T) {
	slots, err := PartitionSlots(
		date(2026, 3, 2), date(2026, 3, 4),
		hour(9, 0), hour(11, 0),
		30, time.UTC,
	)
	if err != nil {
		t.Fatalf("PartitionSlots returned error: %v", err)
	}

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots over 3 days, got %d", len(slots))
	}

	// Slots are emitted in order with no overlap.
	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			t.Errorf("slot %d starts %v before previous end %v", i, slots[i].Start, slots[i-1].End)
		}
	}

	// Each day restarts at the anchor hour.
	if slots[4].Start.Day() != 3 || slots[4].Start.Hour() != 9 {
		t.Errorf("day 2 anchor is %v, want Mar 3 09:00", slots[4].Start)
	}
}

func TestPartitionSlotsWindowTooShort(t *testing.T) {
	// The window cannot fit a single slot. Empty output, not an error.
	slots, err := PartitionSlots(
		date(2026, 3, 2), date(2026, 3, 2),
		hour(9, 0), hour(9, 20),
		30, time.UTC,
	)
	if err != nil {
		t.Fatalf("PartitionSlots returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestPartitionSlotsValidation(t *testing.T) {
	cases := []struct {
		name         string
		startDate    time.Time
		endDate      time.Time
		startHour    time.Time
		endHour      time.Time
		slotDuration int
	}{
		{"end date before start date", date(2026, 3, 5), date(2026, 3, 2), hour(9, 0), hour(11, 0), 30},
		{"end hour before start hour", date(2026, 3, 2), date(2026, 3, 2), hour(11, 0), hour(9, 0), 30},
		{"equal hours", date(2026, 3, 2), date(2026, 3, 2), hour(9, 0), hour(9, 0), 30},
		{"zero duration", date(2026, 3, 2), date(2026, 3, 2), hour(9, 0), hour(11, 0), 0},
		{"negative duration", date(2026, 3, 2), date(2026, 3, 2), hour(9, 0), hour(11, 0), -10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PartitionSlots(tc.startDate, tc.endDate, tc.startHour, tc.endHour, tc.slotDuration, time.UTC)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestPartitionSlotsUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+4", 4*3600)

	slots, err := PartitionSlots(
		date(2026, 3, 2), date(2026, 3, 2),
		hour(9, 0), hour(10, 0),
		60, loc,
	)
	if err != nil {
		t.Fatalf("PartitionSlots returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if got := slots[0].Start.Location(); got != loc {
		t.Errorf("slot anchored in %v, want %v", got, loc)
	}
}
