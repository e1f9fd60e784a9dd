package uow

import (
	"context"

	"avendro-backend/internal/domain/application"
	"avendro-backend/internal/domain/lender"
	"avendro-backend/internal/domain/notification"
	"avendro-backend/internal/domain/payment"
)

type Repos struct {
	Applications  application.Repository
	Lenders       lender.Repository
	Payments      payment.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
