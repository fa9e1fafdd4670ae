package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type CourtRepo struct{ db *gorm.DB }

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Court{})
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.Court) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id string) (*domain.Court, error) {
	var c domain.Court
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Court, error) {
	var out []domain.Court
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *CourtRepo) Update(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Model(&domain.Court{}).Where("id = ?", c.ID).Updates(c).Error
}

func (r *CourtRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Court{}, "id = ?", id).Error
}
