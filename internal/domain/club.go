package domain

import "time"

type Club struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	LogoSrc   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Settings ClubSettings `gorm:"foreignKey:ClubID"`
	Courts   []Court      `gorm:"foreignKey:ClubID"`
}

// ClubSettings is read-only from the booking flow; only a club admin
// can change it. Closing boundary = LastBookableHour:LastBookableMinute,
// bookings may end up to one hour past it.
type ClubSettings struct {
	ID     string `gorm:"primaryKey"`
	ClubID string `gorm:"uniqueIndex"`

	FirstBookableHour   int
	FirstBookableMinute int
	LastBookableHour    int
	LastBookableMinute  int

	// How many hours before start time the owner can still cancel.
	HoursBeforeCancel int
	// How many days ahead the calendar is open for booking.
	DaysInFutureVisible int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Court struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex:idx_court_name_club"`
	ClubID  string `gorm:"uniqueIndex:idx_court_name_club;index"`
	Surface string
	ForHire bool
}
