package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"contact-book-api/internal/domain"
)

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepo) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Contact{}).Error
}

const (
	mysqlMatch   = "MATCH(firstname, lastname, phone, email, address) AGAINST (? IN NATURAL LANGUAGE MODE)"
	pgTSVector   = "to_tsvector('simple', coalesce(firstname,'') || ' ' || coalesce(lastname,'') || ' ' || coalesce(phone,'') || ' ' || coalesce(email,'') || ' ' || coalesce(address,''))"
	pgTSQuery    = "plainto_tsquery('simple', ?)"
	pgMatchWhere = pgTSVector + " @@ " + pgTSQuery
	pgRank       = "ts_rank(" + pgTSVector + ", " + pgTSQuery + ") DESC"
)

// Search text 为空时退化为 owner 过滤分页（存储自然序）；
// 否则在 owner 范围内做全文匹配，按相关度降序。
// 总数先按同一条件算出来，page 从 0 开始。
func (r *ContactRepo) Search(ctx context.Context, ownerUserID, text string, page, size int) ([]domain.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Contact{}).
		Where("owner_user_id = ?", ownerUserID)

	if text != "" {
		switch r.db.Dialector.Name() {
		case "mysql":
			q = q.Where(mysqlMatch, text)
		case "postgres":
			q = q.Where(pgMatchWhere, text)
		default:
			return nil, 0, ErrSearchUnsupported
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if text != "" {
		switch r.db.Dialector.Name() {
		case "mysql":
			q = q.Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL: mysqlMatch + " DESC", Vars: []interface{}{text},
			}})
		case "postgres":
			q = q.Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL: pgRank, Vars: []interface{}{text},
			}})
		}
	}

	var items []domain.Contact
	if err := q.Limit(size).Offset(page * size).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

var ErrSearchUnsupported = errors.New("full-text search not supported by driver")
