package seed

import (
	"context"
	"errors"
	"log"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type ClubStore interface {
	All(ctx context.Context) ([]domain.Club, error)
	Create(ctx context.Context, club *domain.Club) error
}

type CourtStore interface {
	Create(ctx context.Context, c *domain.Court) error
}

type UserStore interface {
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type Stores struct {
	Clubs  ClubStore
	Courts CourtStore
	Users  UserStore
}

// Run provisions a first club, its courts and its admin account so a
// fresh deployment is bookable out of the box. A database that already
// holds a club is left untouched.
func Run(ctx context.Context, s Stores, adminEmail string) error {
	clubs, err := s.Clubs.All(ctx)
	if err != nil {
		return err
	}
	if len(clubs) > 0 {
		return nil
	}

	club := &domain.Club{
		Name: "Foro Italico",
		Settings: domain.ClubSettings{
			FirstBookableHour:   8,
			LastBookableHour:    22,
			LastBookableMinute:  30,
			HoursBeforeCancel:   4,
			DaysInFutureVisible: 7,
		},
	}
	if err := s.Clubs.Create(ctx, club); err != nil {
		return err
	}
	for _, name := range []string{"Pietrangeli", "Centrale"} {
		court := &domain.Court{Name: name, ClubID: club.ID, Surface: "clay"}
		if err := s.Courts.Create(ctx, court); err != nil {
			return err
		}
	}

	if _, err := s.Users.ByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	admin := &domain.User{
		Email:  adminEmail,
		Name:   "Club Admin",
		Role:   domain.RoleAdmin,
		ClubID: club.ID,
	}
	if err := s.Users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("[seed] provisioned club %q with admin %s", club.Name, adminEmail)
	return nil
}
