package service

import (
	"context"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

type UserSvc struct {
	users UserStore
}

func NewUserSvc(users UserStore) *UserSvc {
	return &UserSvc{users: users}
}

func (s *UserSvc) Me(ctx context.Context, acting domain.Identity) (*domain.User, error) {
	return s.users.ByID(ctx, acting.UserID)
}

func (s *UserSvc) UpdateMe(ctx context.Context, acting domain.Identity, name, imageSrc string) (*domain.User, error) {
	u, err := s.users.ByID(ctx, acting.UserID)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.ImageSrc = imageSrc
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteMe removes the account; reservations survive the deletion.
func (s *UserSvc) DeleteMe(ctx context.Context, acting domain.Identity) error {
	return s.users.Delete(ctx, acting.UserID)
}
