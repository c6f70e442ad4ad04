package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"contact-book-api/internal/domain"
)

// 内存版仓储，行为对齐 gorm 实现：找不到返回 nil,nil，
// 用户名冲突返回能被 IsDuplicateKey 识别的错误。

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{} }

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Username == u.Username {
			return errors.New("duplicate key value violates unique constraint \"idx_users_username\"")
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Username == username {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := r.FindByUsername(ctx, username)
	return u != nil, err
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []*domain.Contact
}

func newFakeContactRepo() *fakeContactRepo { return &fakeContactRepo{} }

func (r *fakeContactRepo) Create(_ context.Context, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contacts = append(r.contacts, &cp)
	return nil
}

func (r *fakeContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.contacts {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepo) Update(_ context.Context, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.contacts {
		if e.ID == c.ID {
			cp := *c
			r.contacts[i] = &cp
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeContactRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.contacts {
		if e.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeContactRepo) Search(_ context.Context, ownerUserID, text string, page, size int) ([]domain.Contact, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Contact
	terms := strings.Fields(strings.ToLower(text))
	for _, e := range r.contacts {
		if e.OwnerUserID != ownerUserID {
			continue
		}
		if len(terms) == 0 || contactMatches(e, terms) {
			matched = append(matched, *e)
		}
	}

	total := int64(len(matched))
	start := page * size
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// 近似全文匹配：任一词条出现在任一字段里即命中
func contactMatches(c *domain.Contact, terms []string) bool {
	hay := strings.ToLower(strings.Join([]string{c.Firstname, c.Lastname, c.Phone, c.Email, c.Address}, " "))
	fields := strings.Fields(hay)
	for _, term := range terms {
		for _, f := range fields {
			if f == term {
				return true
			}
		}
	}
	return false
}
