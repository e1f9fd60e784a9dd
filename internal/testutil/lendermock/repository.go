package lendermock

import (
	"context"
	"errors"

	"avendro-backend/internal/domain/lender"
)

// Repository is a function-field mock of lender.Repository.
type Repository struct {
	CreateFn        func(ctx context.Context, l *lender.Lender) error
	GetByLenderIDFn func(ctx context.Context, lenderID string) (*lender.Lender, error)
	SaveFn          func(ctx context.Context, l *lender.Lender) error
}

var errNotImplemented = errors.New("lendermock: not implemented")

func (m *Repository) Create(ctx context.Context, l *lender.Lender) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return errNotImplemented
}

func (m *Repository) GetByLenderID(ctx context.Context, id string) (*lender.Lender, error) {
	if m.GetByLenderIDFn != nil {
		return m.GetByLenderIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Repository) Save(ctx context.Context, l *lender.Lender) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return errNotImplemented
}
