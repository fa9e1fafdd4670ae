package domain

import "time"

type Reservation struct {
	ID          string    `gorm:"primaryKey"`
	StartTime   time.Time `gorm:"index"`
	EndTime     time.Time `gorm:"index"`
	CourtID     string    `gorm:"index"`
	UserID      string    `gorm:"index"`
	RecurrentID *string   `gorm:"index"` // nil for one-off reservations
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User  User  `gorm:"foreignKey:UserID"`
	Court Court `gorm:"foreignKey:CourtID"`
}

// RecurrentReservation groups the weekly rows expanded from a single
// admin booking; deleting it cascades to the member reservations.
type RecurrentReservation struct {
	ID        string    `gorm:"primaryKey"`
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
