package service

import (
	"context"
	"errors"

	"contact-book-api/internal/apperr"
	"contact-book-api/internal/core/auth"
	"contact-book-api/internal/core/database"
	"contact-book-api/internal/domain"
	"contact-book-api/pkg/utils"
)

// 登录失败统一文案：用户名不存在和密码错误不可区分，防枚举
const wrongCredentials = "Wrong credentials"

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal("check username failed", err)
	}
	if exists {
		return nil, apperr.Conflict("User with username %s already exist", username)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		// 超过 72 字节 bcrypt 直接报错；不能放进一个永远登录不上的账号
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperr.BadRequest("password must not exceed 72 bytes")
		}
		return nil, apperr.Internal("hash password failed", err)
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Username:     username,
		PasswordHash: hash,
		Scopes:       domain.DefaultScopes(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发注册兜底：唯一索引才是事实来源，上面的 exists 只是快路径
		if database.IsDuplicateKey(err) {
			return nil, apperr.Conflict("User with username %s already exist", username)
		}
		return nil, apperr.Internal("create user failed", err)
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", apperr.Internal("load user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", apperr.Unauthorized(wrongCredentials)
	}

	tok, err := s.jwter.Issue(u.ID, u.Username, u.Scopes)
	if err != nil {
		return "", apperr.Internal("issue token failed", err)
	}
	return tok, nil
}
