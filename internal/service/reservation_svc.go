package service

import (
	"context"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/booking"
	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/events"
)

type ReservationSvc struct {
	reservations ReservationStore
	courts       CourtStore
	clubs        ClubStore
	pub          Publisher
	clock        booking.Clock
}

func NewReservationSvc(res ReservationStore, courts CourtStore, clubs ClubStore, pub Publisher, clock booking.Clock) *ReservationSvc {
	return &ReservationSvc{reservations: res, courts: courts, clubs: clubs, pub: pub, clock: clock}
}

// Create books [start, end) on the court for the acting user. The slot
// rules run first; the overlap check is enforced by the store inside
// its insert transaction.
func (s *ReservationSvc) Create(ctx context.Context, acting domain.Identity, courtID string, start, end time.Time) (*domain.Reservation, error) {
	court, settings, caps, err := s.courtContext(ctx, acting, courtID)
	if err != nil {
		return nil, err
	}
	if err := booking.Validate(start, end, settings, caps, s.clock.Now()); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		CourtID:   court.ID,
		UserID:    acting.UserID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
	}
	if err := s.reservations.CreateWithNoOverlap(ctx, res); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, events.RKReservationCreated, events.ReservationCreated{
		ReservationID: res.ID,
		UserID:        res.UserID,
		CourtID:       res.CourtID,
		Start:         res.StartTime.Unix(),
		End:           res.EndTime.Unix(),
	})
	return res, nil
}

// CreateRecurrent expands a weekly booking from start until endDate
// (inclusive) and inserts the whole group atomically. Admin only.
func (s *ReservationSvc) CreateRecurrent(ctx context.Context, acting domain.Identity, courtID string, start, end time.Time, endDate time.Time) (*domain.RecurrentReservation, []domain.Reservation, error) {
	court, settings, caps, err := s.courtContext(ctx, acting, courtID)
	if err != nil {
		return nil, nil, err
	}
	if !caps.CanManageRecurrent {
		return nil, nil, domain.ErrForbidden
	}
	if err := booking.Validate(start, end, settings, caps, s.clock.Now()); err != nil {
		return nil, nil, err
	}
	if endDate.Before(start) {
		return nil, nil, domain.ErrInvalidRange
	}

	var members []domain.Reservation
	for st, en := start.UTC(), end.UTC(); !st.After(endDate.UTC()); st, en = st.AddDate(0, 0, 7), en.AddDate(0, 0, 7) {
		members = append(members, domain.Reservation{
			CourtID:   court.ID,
			UserID:    acting.UserID,
			StartTime: st,
			EndTime:   en,
		})
	}
	group := &domain.RecurrentReservation{StartDate: start.UTC(), EndDate: endDate.UTC()}
	if err := s.reservations.CreateRecurrent(ctx, group, members); err != nil {
		return nil, nil, err
	}

	for i := range members {
		_ = s.pub.PublishJSON(ctx, events.RKReservationCreated, events.ReservationCreated{
			ReservationID: members[i].ID,
			UserID:        members[i].UserID,
			CourtID:       members[i].CourtID,
			Start:         members[i].StartTime.Unix(),
			End:           members[i].EndTime.Unix(),
			RecurrentID:   &group.ID,
		})
	}
	return group, members, nil
}

// Delete cancels a reservation. Owners can cancel until the club's
// lockout window opens; club admins can cancel anything at any time.
func (s *ReservationSvc) Delete(ctx context.Context, acting domain.Identity, reservationID string) error {
	res, err := s.reservations.ByID(ctx, reservationID)
	if err != nil {
		return err
	}
	court, err := s.courts.ByID(ctx, res.CourtID)
	if err != nil {
		return err
	}
	caps := domain.CapabilitiesFor(acting, court.ClubID)

	if res.UserID != acting.UserID && !caps.CanDeleteAny {
		return domain.ErrForbidden
	}
	if !caps.CanDeleteAny {
		settings, err := s.clubs.SettingsByClubID(ctx, court.ClubID)
		if err != nil {
			return err
		}
		lockout := res.StartTime.Add(-time.Duration(settings.HoursBeforeCancel) * time.Hour)
		if s.clock.Now().After(lockout) {
			return domain.ErrTooLateToCancel
		}
	}

	if err := s.reservations.Delete(ctx, reservationID); err != nil {
		return err
	}
	_ = s.pub.PublishJSON(ctx, events.RKReservationCancelled, events.ReservationCancelled{
		ReservationID: res.ID,
		UserID:        res.UserID,
		CourtID:       res.CourtID,
	})
	return nil
}

// DeleteRecurrentGroup removes every reservation of the group on the
// club's courts. Admin only.
func (s *ReservationSvc) DeleteRecurrentGroup(ctx context.Context, acting domain.Identity, recurrentID, clubID string) (int64, error) {
	caps := domain.CapabilitiesFor(acting, clubID)
	if !caps.CanManageRecurrent {
		return 0, domain.ErrForbidden
	}
	removed, err := s.reservations.DeleteRecurrentGroup(ctx, recurrentID, clubID)
	if err != nil {
		return 0, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKRecurrentReservationCancelled, events.RecurrentReservationCancelled{
		RecurrentID: recurrentID,
		ClubID:      clubID,
		Removed:     removed,
	})
	return removed, nil
}

// Validate re-runs the slot rules for the booking dialog and, as a
// courtesy, reports a clash against the current snapshot. The snapshot
// check is feedback only: the insert transaction remains authoritative.
func (s *ReservationSvc) Validate(ctx context.Context, acting domain.Identity, courtID string, start, end time.Time) error {
	court, settings, caps, err := s.courtContext(ctx, acting, courtID)
	if err != nil {
		return err
	}
	if err := booking.Validate(start, end, settings, caps, s.clock.Now()); err != nil {
		return err
	}
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := s.reservations.ListByCourt(ctx, court.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	if booking.HasConflict(court.ID, start, end, existing) {
		return domain.ErrConflict
	}
	return nil
}

func (s *ReservationSvc) ListByClub(ctx context.Context, clubID string, from, to time.Time) ([]domain.Reservation, error) {
	return s.reservations.ListByClub(ctx, clubID, from, to)
}

func (s *ReservationSvc) ListMine(ctx context.Context, acting domain.Identity) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, acting.UserID)
}

// courtContext resolves the court, its club settings and the acting
// user's capabilities toward that club.
func (s *ReservationSvc) courtContext(ctx context.Context, acting domain.Identity, courtID string) (*domain.Court, domain.ClubSettings, domain.Capabilities, error) {
	court, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return nil, domain.ClubSettings{}, domain.Capabilities{}, err
	}
	settings, err := s.clubs.SettingsByClubID(ctx, court.ClubID)
	if err != nil {
		return nil, domain.ClubSettings{}, domain.Capabilities{}, err
	}
	return court, settings, domain.CapabilitiesFor(acting, court.ClubID), nil
}
