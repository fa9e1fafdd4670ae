package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	Name      string
	ImageSrc  string
	Role      string `gorm:"index"` // USER|ADMIN
	ClubID    string `gorm:"index"` // set for admins only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the authenticated caller, extracted once by the JWT
// middleware and passed explicitly to every command.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
	ClubID string // club the user administers, empty for plain users
}

// Capabilities replaces scattered role-string comparisons: computed once
// per command against the club the command targets.
type Capabilities struct {
	CanOverrideDuration bool
	CanBookPast         bool
	CanDeleteAny        bool
	CanManageRecurrent  bool
	CanManageClub       bool
}

// CapabilitiesFor grants the elevated set only to an admin of the given club.
func CapabilitiesFor(id Identity, clubID string) Capabilities {
	admin := id.Role == RoleAdmin && id.ClubID != "" && id.ClubID == clubID
	return Capabilities{
		CanOverrideDuration: admin,
		CanBookPast:         admin,
		CanDeleteAny:        admin,
		CanManageRecurrent:  admin,
		CanManageClub:       admin,
	}
}
