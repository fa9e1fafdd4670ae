package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type ClubRepo struct{ db *gorm.DB }

func NewClubRepo(db *gorm.DB) *ClubRepo {
	return &ClubRepo{db: db}
}

func (r *ClubRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Club{}, &domain.ClubSettings{})
}

func (r *ClubRepo) Create(ctx context.Context, club *domain.Club) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if club.ID == "" {
			club.ID = uuid.NewString()
		}
		if club.Settings.ID == "" {
			club.Settings.ID = uuid.NewString()
		}
		club.Settings.ClubID = club.ID
		return tx.Create(club).Error
	})
}

func (r *ClubRepo) All(ctx context.Context) ([]domain.Club, error) {
	var out []domain.Club
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ClubRepo) ByID(ctx context.Context, id string) (*domain.Club, error) {
	var club domain.Club
	err := r.db.WithContext(ctx).Preload("Settings").First(&club, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepo) SettingsByClubID(ctx context.Context, clubID string) (domain.ClubSettings, error) {
	var settings domain.ClubSettings
	err := r.db.WithContext(ctx).First(&settings, "club_id = ?", clubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ClubSettings{}, domain.ErrNotFound
	}
	return settings, err
}

func (r *ClubRepo) UpdateSettings(ctx context.Context, settings domain.ClubSettings) error {
	return r.db.WithContext(ctx).
		Model(&domain.ClubSettings{}).
		Where("club_id = ?", settings.ClubID).
		Updates(map[string]any{
			"first_bookable_hour":    settings.FirstBookableHour,
			"first_bookable_minute":  settings.FirstBookableMinute,
			"last_bookable_hour":     settings.LastBookableHour,
			"last_bookable_minute":   settings.LastBookableMinute,
			"hours_before_cancel":    settings.HoursBeforeCancel,
			"days_in_future_visible": settings.DaysInFutureVisible,
		}).Error
}
