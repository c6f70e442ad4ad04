package domain

import (
	"context"
	"time"
)

// 权限标识（写进 token 的 scopes）
const (
	ScopeContactRead  = "CONTACT_READ"
	ScopeContactWrite = "CONTACT_WRITE"
)

// DefaultScopes 注册时授予的默认权限
func DefaultScopes() []string {
	return []string{ScopeContactRead, ScopeContactWrite}
}

type User struct {
	ID           string   `gorm:"primaryKey;size:32" json:"id"`
	Username     string   `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Scopes       []string `gorm:"serializer:json;type:varchar(255)" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// HasScope 检查权限
func (u *User) HasScope(scope string) bool {
	for _, s := range u.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
