package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys published on the reservation exchange.
const (
	RKReservationCreated            = "reservation.created"
	RKReservationCancelled          = "reservation.cancelled"
	RKRecurrentReservationCancelled = "reservation.recurrent_cancelled"
)

type ReservationCreated struct {
	ReservationID string  `json:"reservation_id"`
	UserID        string  `json:"user_id"`
	CourtID       string  `json:"court_id"`
	Start         int64   `json:"start"` // unix seconds
	End           int64   `json:"end"`
	RecurrentID   *string `json:"recurrent_id,omitempty"`
}

type ReservationCancelled struct {
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	CourtID       string `json:"court_id"`
}

type RecurrentReservationCancelled struct {
	RecurrentID string `json:"recurrent_id"`
	ClubID      string `json:"club_id"`
	Removed     int64  `json:"removed"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
