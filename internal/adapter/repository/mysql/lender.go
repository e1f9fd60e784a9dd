package mysql

import (
	"context"

	"gorm.io/gorm"

	lenderDomain "avendro-backend/internal/domain/lender"
)

type LenderRepository struct{ db *gorm.DB }

func NewLenderRepository(db *gorm.DB) *LenderRepository { return &LenderRepository{db: db} }

func (r *LenderRepository) Create(ctx context.Context, l *lenderDomain.Lender) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LenderRepository) Save(ctx context.Context, l *lenderDomain.Lender) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LenderRepository) GetByLenderID(ctx context.Context, lenderID string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	res := r.db.WithContext(ctx).Where("lender_id = ?", lenderID).First(&out)
	return &out, res.Error
}
