package booking

import (
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

// Overlaps reports whether two half-open intervals intersect.
// Touching at a boundary ([10,11) vs [11,12)) is not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict reports whether [start, end) clashes with any existing
// reservation on the same court.
//
// This runs against whatever snapshot the caller holds and is only good
// for immediate feedback; the authoritative check happens inside the
// repository transaction at insert time.
func HasConflict(courtID string, start, end time.Time, existing []domain.Reservation) bool {
	for i := range existing {
		other := &existing[i]
		if other.CourtID != courtID {
			continue
		}
		if Overlaps(start, end, other.StartTime, other.EndTime) {
			return true
		}
	}
	return false
}
