package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Reservation{}, &domain.RecurrentReservation{})
}

// CreateWithNoOverlap inserts the reservation inside a transaction that
// first locks any row on the same court whose interval would overlap.
// This is the authoritative clash check: two concurrent bookers cannot
// both get past the locked SELECT.
func (r *ReservationRepo) CreateWithNoOverlap(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOverlapping(tx, res.CourtID, res.StartTime, res.EndTime); err != nil {
			return err
		}
		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		return tx.Create(res).Error
	})
}

// CreateRecurrent inserts the group row and every member reservation in
// one transaction; any member clashing with an existing reservation
// aborts the whole group.
func (r *ReservationRepo) CreateRecurrent(ctx context.Context, group *domain.RecurrentReservation, members []domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if group.ID == "" {
			group.ID = uuid.NewString()
		}
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		for i := range members {
			m := &members[i]
			if err := lockOverlapping(tx, m.CourtID, m.StartTime, m.EndTime); err != nil {
				return err
			}
			if m.ID == "" {
				m.ID = uuid.NewString()
			}
			m.RecurrentID = &group.ID
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// lockOverlapping takes a FOR UPDATE lock on candidate rows and returns
// ErrConflict when any overlapping reservation exists on the court.
func lockOverlapping(tx *gorm.DB, courtID string, start, end time.Time) error {
	var existing domain.Reservation
	err := tx.Model(&domain.Reservation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("court_id = ?", courtID).
		Where("start_time < ? AND end_time > ?", end, start).
		Take(&existing).Error
	if err == nil {
		return domain.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *ReservationRepo) ByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).Preload("Court").First(&res, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Reservation{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteRecurrentGroup removes every member reservation of the group
// scoped to courts of the given club, then the group row itself.
// Returns how many reservations were removed.
func (r *ReservationRepo) DeleteRecurrentGroup(ctx context.Context, recurrentID, clubID string) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courtIDs := tx.Model(&domain.Court{}).Select("id").Where("club_id = ?", clubID)
		res := tx.Where("recurrent_id = ? AND court_id IN (?)", recurrentID, courtIDs).
			Delete(&domain.Reservation{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return tx.Delete(&domain.RecurrentReservation{}, "id = ?", recurrentID).Error
	})
	return removed, err
}

// ListByClub returns the reservations of every court of the club whose
// interval intersects [from, to), with court and booker preloaded for
// the calendar projection.
func (r *ReservationRepo) ListByClub(ctx context.Context, clubID string, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Court").
		Joins("JOIN courts ON courts.id = reservations.court_id").
		Where("courts.club_id = ?", clubID).
		Where("reservations.start_time < ? AND reservations.end_time > ?", to, from).
		Order("reservations.start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) ListByCourt(ctx context.Context, courtID string, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Where("start_time < ? AND end_time > ?", to, from).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Court").
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}
