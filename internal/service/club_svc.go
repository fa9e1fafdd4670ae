package service

import (
	"context"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type ClubSvc struct {
	clubs ClubStore
}

func NewClubSvc(clubs ClubStore) *ClubSvc {
	return &ClubSvc{clubs: clubs}
}

func (s *ClubSvc) GetAll(ctx context.Context) ([]domain.Club, error) {
	return s.clubs.All(ctx)
}

func (s *ClubSvc) GetByID(ctx context.Context, clubID string) (*domain.Club, error) {
	return s.clubs.ByID(ctx, clubID)
}

// UpdateSettings is admin only; the closing boundary may not precede
// the opening one.
func (s *ClubSvc) UpdateSettings(ctx context.Context, acting domain.Identity, settings domain.ClubSettings) error {
	caps := domain.CapabilitiesFor(acting, settings.ClubID)
	if !caps.CanManageClub {
		return domain.ErrForbidden
	}
	opening := settings.FirstBookableHour*60 + settings.FirstBookableMinute
	closing := settings.LastBookableHour*60 + settings.LastBookableMinute
	if closing < opening {
		return domain.ErrInvalidRange
	}
	return s.clubs.UpdateSettings(ctx, settings)
}
