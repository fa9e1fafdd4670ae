package service

import (
	"context"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

// Store interfaces cover exactly what the services need; the gorm
// repositories in internal/repository implement them.

type ReservationStore interface {
	CreateWithNoOverlap(ctx context.Context, res *domain.Reservation) error
	CreateRecurrent(ctx context.Context, group *domain.RecurrentReservation, members []domain.Reservation) error
	ByID(ctx context.Context, id string) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	DeleteRecurrentGroup(ctx context.Context, recurrentID, clubID string) (int64, error)
	ListByClub(ctx context.Context, clubID string, from, to time.Time) ([]domain.Reservation, error)
	ListByCourt(ctx context.Context, courtID string, from, to time.Time) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
}

type CourtStore interface {
	Create(ctx context.Context, c *domain.Court) error
	ByID(ctx context.Context, id string) (*domain.Court, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	Delete(ctx context.Context, id string) error
}

type ClubStore interface {
	All(ctx context.Context) ([]domain.Club, error)
	ByID(ctx context.Context, id string) (*domain.Club, error)
	SettingsByClubID(ctx context.Context, clubID string) (domain.ClubSettings, error)
	UpdateSettings(ctx context.Context, settings domain.ClubSettings) error
}

type UserStore interface {
	ByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// Publisher is satisfied by pkg/mq.Publisher.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
