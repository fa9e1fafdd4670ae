package booking

import (
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

const (
	// Reservations start and end on the hour or half hour.
	SlotMinutes = 30
	// Plain users book at most two hours.
	MaxDuration = 2 * time.Hour
	// A reservation may end up to one hour past the last bookable slot.
	ClosingGrace = time.Hour
)

// Validate checks a proposed [start, end) interval against the club rules.
// Rules are evaluated in order and the first violation wins:
//
//  1. missing or inverted end -> ErrInvalidRange
//  2. start already past      -> ErrPastTime (admins are exempt)
//  3. minute not :00 or :30   -> ErrBadGranularity
//  4. longer than two hours   -> ErrDurationExceeded (admins are exempt)
//  5. ends after closing+1h   -> ErrAfterClosing (admins are exempt)
//
// Pure: the caller supplies now via a Clock.
func Validate(start, end time.Time, settings domain.ClubSettings, caps domain.Capabilities, now time.Time) error {
	if end.IsZero() || !end.After(start) {
		return domain.ErrInvalidRange
	}
	if start.Before(now) && !caps.CanBookPast {
		return domain.ErrPastTime
	}
	if !alignedToSlot(start) || !alignedToSlot(end) {
		return domain.ErrBadGranularity
	}
	if end.Sub(start) > MaxDuration && !caps.CanOverrideDuration {
		return domain.ErrDurationExceeded
	}
	if end.After(closingBoundary(start, settings)) && !caps.CanOverrideDuration {
		return domain.ErrAfterClosing
	}
	return nil
}

func alignedToSlot(t time.Time) bool {
	return t.Minute()%SlotMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// closingBoundary is the latest admissible end time on the day of start:
// the last bookable slot plus one hour of grace.
func closingBoundary(start time.Time, settings domain.ClubSettings) time.Time {
	lastSlot := time.Date(
		start.Year(), start.Month(), start.Day(),
		settings.LastBookableHour, settings.LastBookableMinute,
		0, 0, start.Location(),
	)
	return lastSlot.Add(ClosingGrace)
}
