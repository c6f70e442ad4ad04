package domain

import "context"

type Contact struct {
	ID          string `gorm:"primaryKey;size:32" json:"id"`
	OwnerUserID string `gorm:"index;size:32;not null" json:"ownerUserId"`

	// 五个自由文本字段，全部进全文索引
	Firstname string `gorm:"size:191" json:"firstname"`
	Lastname  string `gorm:"size:191" json:"lastname"`
	Phone     string `gorm:"size:191" json:"phone"`
	Email     string `gorm:"size:191" json:"email"`
	Address   string `gorm:"size:191" json:"address"`
}

func (Contact) TableName() string { return "contact_books" }

// ContactFields PUT/POST 的可写字段（OwnerUserID 不在其中）
type ContactFields struct {
	Firstname string
	Lastname  string
	Phone     string
	Email     string
	Address   string
}

func (c *Contact) Apply(f ContactFields) {
	c.Firstname = f.Firstname
	c.Lastname = f.Lastname
	c.Phone = f.Phone
	c.Email = f.Email
	c.Address = f.Address
}

type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	FindByID(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id string) error
	// Search text 为空时退化为 owner 过滤分页；page 从 0 开始
	Search(ctx context.Context, ownerUserID, text string, page, size int) ([]Contact, int64, error)
}
