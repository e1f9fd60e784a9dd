package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]Payment, error)
	// SumByApplicationID returns the total paid; zero when no rows exist.
	SumByApplicationID(ctx context.Context, applicationID uint64) (float64, error)
	// TotalsByApplicationIDs returns paid totals keyed by application id;
	// ids with no payments are absent from the map.
	TotalsByApplicationIDs(ctx context.Context, applicationIDs []uint64) (map[uint64]float64, error)
}
