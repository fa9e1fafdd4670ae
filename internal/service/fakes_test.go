package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/booking"
	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeStore keeps everything in slices/maps and mirrors the overlap
// semantics of the gorm repository.
type fakeStore struct {
	reservations []domain.Reservation
	groups       map[string]domain.RecurrentReservation
	courts       map[string]domain.Court
	clubs        map[string]domain.Club
	settings     map[string]domain.ClubSettings // by club id
	users        map[string]domain.User
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		groups:   map[string]domain.RecurrentReservation{},
		courts:   map[string]domain.Court{},
		clubs:    map[string]domain.Club{},
		settings: map[string]domain.ClubSettings{},
		users:    map[string]domain.User{},
	}
}

func (f *fakeStore) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) CreateWithNoOverlap(_ context.Context, res *domain.Reservation) error {
	if booking.HasConflict(res.CourtID, res.StartTime, res.EndTime, f.reservations) {
		return domain.ErrConflict
	}
	if res.ID == "" {
		res.ID = f.genID()
	}
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeStore) CreateRecurrent(ctx context.Context, group *domain.RecurrentReservation, members []domain.Reservation) error {
	if group.ID == "" {
		group.ID = f.genID()
	}
	inserted := len(f.reservations)
	for i := range members {
		members[i].RecurrentID = &group.ID
		if err := f.CreateWithNoOverlap(ctx, &members[i]); err != nil {
			f.reservations = f.reservations[:inserted] // roll back the group
			return err
		}
	}
	f.groups[group.ID] = *group
	return nil
}

func (f *fakeStore) ByID(_ context.Context, id string) (*domain.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			res := f.reservations[i]
			return &res, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) DeleteRecurrentGroup(_ context.Context, recurrentID, clubID string) (int64, error) {
	var kept []domain.Reservation
	var removed int64
	for _, r := range f.reservations {
		court := f.courts[r.CourtID]
		if r.RecurrentID != nil && *r.RecurrentID == recurrentID && court.ClubID == clubID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.reservations = kept
	delete(f.groups, recurrentID)
	return removed, nil
}

func (f *fakeStore) ListByClub(_ context.Context, clubID string, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.reservations {
		if f.courts[r.CourtID].ClubID == clubID && booking.Overlaps(r.StartTime, r.EndTime, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByCourt(_ context.Context, courtID string, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.reservations {
		if r.CourtID == courtID && booking.Overlaps(r.StartTime, r.EndTime, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// CourtStore

func (f *fakeStore) Create(_ context.Context, c *domain.Court) error {
	if c.ID == "" {
		c.ID = f.genID()
	}
	f.courts[c.ID] = *c
	return nil
}

func (f *fakeStore) CourtByID(_ context.Context, id string) (*domain.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) ListCourtsByClub(_ context.Context, clubID string) ([]domain.Court, error) {
	var out []domain.Court
	for _, c := range f.courts {
		if c.ClubID == clubID {
			out = append(out, c)
		}
	}
	return out, nil
}

// courtStoreAdapter exposes the fake under the CourtStore method set,
// whose names collide with ReservationStore's.
type courtStoreAdapter struct{ f *fakeStore }

func (a courtStoreAdapter) Create(ctx context.Context, c *domain.Court) error {
	return a.f.Create(ctx, c)
}
func (a courtStoreAdapter) ByID(ctx context.Context, id string) (*domain.Court, error) {
	return a.f.CourtByID(ctx, id)
}
func (a courtStoreAdapter) ListByClub(ctx context.Context, clubID string) ([]domain.Court, error) {
	return a.f.ListCourtsByClub(ctx, clubID)
}
func (a courtStoreAdapter) Update(_ context.Context, c *domain.Court) error {
	if _, ok := a.f.courts[c.ID]; !ok {
		return domain.ErrNotFound
	}
	a.f.courts[c.ID] = *c
	return nil
}
func (a courtStoreAdapter) Delete(_ context.Context, id string) error {
	delete(a.f.courts, id)
	return nil
}

type clubStoreAdapter struct{ f *fakeStore }

func (a clubStoreAdapter) All(_ context.Context) ([]domain.Club, error) {
	var out []domain.Club
	for _, c := range a.f.clubs {
		out = append(out, c)
	}
	return out, nil
}
func (a clubStoreAdapter) ByID(_ context.Context, id string) (*domain.Club, error) {
	c, ok := a.f.clubs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}
func (a clubStoreAdapter) SettingsByClubID(_ context.Context, clubID string) (domain.ClubSettings, error) {
	s, ok := a.f.settings[clubID]
	if !ok {
		return domain.ClubSettings{}, domain.ErrNotFound
	}
	return s, nil
}
func (a clubStoreAdapter) UpdateSettings(_ context.Context, s domain.ClubSettings) error {
	if _, ok := a.f.settings[s.ClubID]; !ok {
		return domain.ErrNotFound
	}
	a.f.settings[s.ClubID] = s
	return nil
}

type userStoreAdapter struct{ f *fakeStore }

func (a userStoreAdapter) ByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := a.f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}
func (a userStoreAdapter) Update(_ context.Context, u *domain.User) error {
	if _, ok := a.f.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	a.f.users[u.ID] = *u
	return nil
}
func (a userStoreAdapter) Delete(_ context.Context, id string) error {
	if _, ok := a.f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(a.f.users, id)
	return nil
}

// fakePublisher records every published event.
type fakePublisher struct {
	keys     []string
	payloads []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, v)
	return nil
}
