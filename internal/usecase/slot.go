package usecase

import (
	"fmt"
	"time"
)

// Slot is one half-open bookable interval [Start, End).
type Slot struct {
	Start time.Time
	End   time.Time
}

// PartitionSlots cuts every day in [startDate, endDate] (inclusive) into
// consecutive slots of slotDuration minutes, the first anchored at startHour
// in loc. Only full slots are emitted: a trailing window shorter than
// slotDuration is dropped. A day too short for even one slot contributes
// nothing, so an empty result is valid output, not an error.
//
// Pure function: no I/O, deterministic for fixed inputs.
func PartitionSlots(startDate, endDate, startHour, endHour time.Time, slotDuration int, loc *time.Location) ([]Slot, error) {
	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start date must not be after end date", ErrValidation)
	}
	if !minutesOfDayBefore(startHour, endHour) {
		return nil, fmt.Errorf("%w: start hour must be before end hour", ErrValidation)
	}
	if slotDuration <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrValidation)
	}

	if loc == nil {
		loc = time.Local
	}

	windowMinutes := minutesOfDay(endHour) - minutesOfDay(startHour)
	slotsPerDay := windowMinutes / slotDuration
	duration := time.Duration(slotDuration) * time.Minute

	firstDay := dateOnly(startDate)
	lastDay := dateOnly(endDate)

	var slots []Slot
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		cursor := time.Date(day.Year(), day.Month(), day.Day(),
			startHour.Hour(), startHour.Minute(), 0, 0, loc)

		for i := 0; i < slotsPerDay; i++ {
			end := cursor.Add(duration)
			slots = append(slots, Slot{Start: cursor, End: end})
			cursor = end
		}
	}

	return slots, nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func minutesOfDayBefore(a, b time.Time) bool {
	return minutesOfDay(a) < minutesOfDay(b)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
