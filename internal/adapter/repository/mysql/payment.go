package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "avendro-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("paid_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) SumByApplicationID(ctx context.Context, applicationID uint64) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("application_id = ?", applicationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *PaymentRepository) TotalsByApplicationIDs(ctx context.Context, applicationIDs []uint64) (map[uint64]float64, error) {
	out := make(map[uint64]float64, len(applicationIDs))
	if len(applicationIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ApplicationID uint64
		Total         float64
	}
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("application_id IN ?", applicationIDs).
		Select("application_id, SUM(amount) AS total").
		Group("application_id").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for _, row := range rows {
		out[row.ApplicationID] = row.Total
	}
	return out, nil
}
