package appmock

import (
	"context"
	"errors"

	"avendro-backend/internal/domain/application"
)

// Repository is a function-field mock of application.Repository. Unset
// functions return a "not implemented" error so tests fail loudly when a
// flow touches something unexpected.
type Repository struct {
	CreateFn                      func(ctx context.Context, a *application.Application) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*application.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*application.Application, error)
	ListByFingerprintFn           func(ctx context.Context, fingerprint string) ([]application.Application, error)
	SaveFn                        func(ctx context.Context, a *application.Application) error
}

var errNotImplemented = errors.New("appmock: not implemented")

func (m *Repository) Create(ctx context.Context, a *application.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return errNotImplemented
}

func (m *Repository) GetByApplicationID(ctx context.Context, id string) (*application.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Repository) GetByApplicationIDForUpdate(ctx context.Context, id string) (*application.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Repository) ListByFingerprint(ctx context.Context, fp string) ([]application.Application, error) {
	if m.ListByFingerprintFn != nil {
		return m.ListByFingerprintFn(ctx, fp)
	}
	return nil, errNotImplemented
}

func (m *Repository) Save(ctx context.Context, a *application.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return errNotImplemented
}
