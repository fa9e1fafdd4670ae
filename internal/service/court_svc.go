package service

import (
	"context"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type CourtSvc struct {
	courts CourtStore
}

func NewCourtSvc(courts CourtStore) *CourtSvc {
	return &CourtSvc{courts: courts}
}

func (s *CourtSvc) ListByClub(ctx context.Context, clubID string) ([]domain.Court, error) {
	return s.courts.ListByClub(ctx, clubID)
}

func (s *CourtSvc) Create(ctx context.Context, acting domain.Identity, court domain.Court) (*domain.Court, error) {
	if !domain.CapabilitiesFor(acting, court.ClubID).CanManageClub {
		return nil, domain.ErrForbidden
	}
	if err := s.courts.Create(ctx, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (s *CourtSvc) Update(ctx context.Context, acting domain.Identity, court domain.Court) (*domain.Court, error) {
	current, err := s.courts.ByID(ctx, court.ID)
	if err != nil {
		return nil, err
	}
	if !domain.CapabilitiesFor(acting, current.ClubID).CanManageClub {
		return nil, domain.ErrForbidden
	}
	court.ClubID = current.ClubID // a court never moves between clubs
	if err := s.courts.Update(ctx, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (s *CourtSvc) Delete(ctx context.Context, acting domain.Identity, courtID string) error {
	current, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return err
	}
	if !domain.CapabilitiesFor(acting, current.ClubID).CanManageClub {
		return domain.ErrForbidden
	}
	return s.courts.Delete(ctx, courtID)
}
