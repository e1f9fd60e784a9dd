package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row; only valid inside a tx.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	ListByFingerprint(ctx context.Context, fingerprint string) ([]Application, error)
	Save(ctx context.Context, a *Application) error
}
