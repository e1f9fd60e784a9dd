package paymock

import (
	"context"
	"errors"

	"avendro-backend/internal/domain/payment"
)

// Repository is a function-field mock of payment.Repository. The Totals and
// Sum methods default to "no payments" since most flows only read balances.
type Repository struct {
	CreateFn                 func(ctx context.Context, p *payment.Payment) error
	ListByApplicationIDFn    func(ctx context.Context, applicationID uint64) ([]payment.Payment, error)
	SumByApplicationIDFn     func(ctx context.Context, applicationID uint64) (float64, error)
	TotalsByApplicationIDsFn func(ctx context.Context, applicationIDs []uint64) (map[uint64]float64, error)
}

var errNotImplemented = errors.New("paymock: not implemented")

func (m *Repository) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errNotImplemented
}

func (m *Repository) ListByApplicationID(ctx context.Context, id uint64) ([]payment.Payment, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, id)
	}
	return nil, nil
}

func (m *Repository) SumByApplicationID(ctx context.Context, id uint64) (float64, error) {
	if m.SumByApplicationIDFn != nil {
		return m.SumByApplicationIDFn(ctx, id)
	}
	return 0, nil
}

func (m *Repository) TotalsByApplicationIDs(ctx context.Context, ids []uint64) (map[uint64]float64, error) {
	if m.TotalsByApplicationIDsFn != nil {
		return m.TotalsByApplicationIDsFn(ctx, ids)
	}
	return map[uint64]float64{}, nil
}
