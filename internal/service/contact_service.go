package service

import (
	"context"
	"strings"

	"contact-book-api/internal/apperr"
	"contact-book-api/internal/domain"
	"contact-book-api/pkg/utils"
)

type ContactService struct {
	contacts domain.ContactRepository
}

func NewContactService(contacts domain.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(ctx context.Context, ownerID string, f domain.ContactFields) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:          utils.NewID(),
		OwnerUserID: ownerID,
	}
	c.Apply(f)
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, apperr.Internal("create contact failed", err)
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, id, requesterID string) (*domain.Contact, error) {
	return s.ownedContact(ctx, id, requesterID)
}

// Update 原地替换五个文本字段，id 和 ownerUserId 保持不变
func (s *ContactService) Update(ctx context.Context, id string, f domain.ContactFields, requesterID string) (*domain.Contact, error) {
	c, err := s.ownedContact(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	c.Apply(f)
	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, apperr.Internal("update contact failed", err)
	}
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.ownedContact(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return apperr.Internal("delete contact failed", err)
	}
	return nil
}

type SearchParams struct {
	Firstname string
	Lastname  string
	Phone     string
	Email     string
	Address   string
}

func (s *ContactService) Search(ctx context.Context, requesterID string, p SearchParams, page, size int) (domain.Page[domain.Contact], error) {
	text := buildSearchText(p)
	items, total, err := s.contacts.Search(ctx, requesterID, text, page, size)
	if err != nil {
		return domain.Page[domain.Contact]{}, apperr.Internal("search contacts failed", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

// 先确认存在再确认归属：别人的记录给 403 而不是 404
func (s *ContactService) ownedContact(ctx context.Context, id, requesterID string) (*domain.Contact, error) {
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load contact failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Contact book with id %s not found", id)
	}
	if c.OwnerUserID != requesterID {
		return nil, apperr.Forbidden("You can access only your own contact books")
	}
	return c, nil
}

// buildSearchText 把非空检索字段拼成一条全文查询串
func buildSearchText(p SearchParams) string {
	var sb strings.Builder
	for _, f := range []string{p.Firstname, p.Lastname, p.Address, p.Phone, p.Email} {
		if s := strings.TrimSpace(f); s != "" {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}
