package service

import (
	"context"
	"errors"
	"time"

	"contact-book-api/internal/apperr"
	"contact-book-api/internal/core/cache"
	"contact-book-api/internal/domain"
)

const userCacheTTL = 30 * time.Second

type UserService struct {
	users domain.UserRepository
	cache *cache.Cache // 可选，nil 时直查库
}

func NewUserService(users domain.UserRepository, c *cache.Cache) *UserService {
	return &UserService{users: users, cache: c}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		u, err := cache.GetOrLoadJSON[domain.User](s.cache, ctx, "user:"+id, userCacheTTL, func(ctx context.Context) (*domain.User, error) {
			return s.loadUser(ctx, id)
		})
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		if err == nil && u != nil {
			return u, nil
		}
		// redis 不可用时回退直查
	}
	return s.loadUser(ctx, id)
}

func (s *UserService) loadUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User with id %s not found", id)
	}
	return u, nil
}
