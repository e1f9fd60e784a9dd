package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"avendro-backend/internal/domain/actor"
	domainApp "avendro-backend/internal/domain/application"
	domainLender "avendro-backend/internal/domain/lender"
	domainNotif "avendro-backend/internal/domain/notification"
	domainPayment "avendro-backend/internal/domain/payment"
	"avendro-backend/internal/domain/uow"
	"avendro-backend/internal/usecase/identity"
	"avendro-backend/pkg/amortize"
	"avendro-backend/pkg/id"
)

// Usecase is the application state machine. It is the only mutator of
// application records; everything else reads.
type Usecase struct {
	apps     domainApp.Repository
	lenders  domainLender.Repository
	payments domainPayment.Repository
	resolver *identity.Resolver
	uow      uow.UnitOfWork
	notifier domainNotif.Notifier
}

func NewUsecase(
	apps domainApp.Repository,
	lenders domainLender.Repository,
	payments domainPayment.Repository,
	resolver *identity.Resolver,
	tx uow.UnitOfWork,
	notifier domainNotif.Notifier,
) *Usecase {
	return &Usecase{apps: apps, lenders: lenders, payments: payments, resolver: resolver, uow: tx, notifier: notifier}
}

// Create runs intake: duplicate resolution, lender eligibility, amortization,
// then persists the application in pending. The open-key unique index is the
// backstop for two concurrent submissions racing past the resolver; the
// loser surfaces ErrDuplicateApplication.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	ln, err := u.lenders.GetByLenderID(ctx, in.LenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLender.ErrNotFound
		}
		return nil, err
	}
	if !ln.Approved {
		return nil, &domainApp.IntakeRejection{Kind: domainApp.IntakeLenderNotApproved}
	}

	decision, err := u.resolver.Resolve(ctx, identity.Candidate{
		FirstName: in.FirstName, LastName: in.LastName, Email: in.Email,
	}, in.LenderID)
	if err != nil {
		return nil, err
	}
	if decision.Blocked {
		switch decision.Reason {
		case identity.ReasonActiveObligation:
			return nil, &domainApp.IntakeRejection{
				Kind:               domainApp.IntakeActiveObligation,
				OutstandingBalance: decision.OutstandingBalance,
				LenderNames:        decision.LenderNames,
			}
		default:
			return nil, &domainApp.IntakeRejection{Kind: domainApp.IntakeOpenApplication}
		}
	}

	res, err := ln.ValidateTerms(in.Amount, in.TermMonths, in.InterestRate, in.ProductType)
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return nil, &domainApp.IntakeRejection{Kind: domainApp.IntakeInvalidTerms, Violations: res.Violations}
	}

	sched, err := amortize.Compute(
		decimal.NewFromFloat(in.Amount),
		decimal.NewFromFloat(in.InterestRate),
		in.TermMonths,
	)
	if err != nil {
		return nil, err
	}

	openKey := domainApp.OpenKeyFor(decision.Fingerprint, in.LenderID)
	a := &domainApp.Application{
		ApplicationID:  id.NewID32(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		DateOfBirth:    in.DateOfBirth,
		Fingerprint:    decision.Fingerprint,
		LenderID:       in.LenderID,
		ProductType:    in.ProductType,
		Amount:         in.Amount,
		TermMonths:     in.TermMonths,
		InterestRate:   in.InterestRate,
		MonthlyPayment: sched.MonthlyPayment.InexactFloat64(),
		TotalPayment:   sched.TotalPayment.InexactFloat64(),
		TotalInterest:  sched.TotalInterest.InexactFloat64(),
		Status:         domainApp.StatusPending,
		OpenKey:        &openKey,
		StateUpdatedAt: time.Now().UTC(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainApp.ErrDuplicateApplication
		}
		return nil, err
	}

	u.notify(ctx, domainNotif.Event{
		Type:           domainNotif.TypeNewApplication,
		LenderID:       ln.LenderID,
		RecipientEmail: ln.ContactEmail,
		ApplicationID:  a.ApplicationID,
		Message:        fmt.Sprintf("New %s application for %.2f from %s %s", a.ProductType, a.Amount, a.FirstName, a.LastName),
	})

	dto := toDTO(a)
	dto.Note = decision.Note
	return dto, nil
}

// Approve transitions pending|review -> approved. Payment fields are
// recomputed from the row's own amount/rate/term before freezing, so any
// upstream drift is corrected rather than trusted. Approving an approved
// application is a no-op success with ApprovedAt untouched.
func (u *Usecase) Approve(ctx context.Context, applicationID string, act actor.Actor) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	var approved *domainApp.Application

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.Application) error {
		if !act.CanTransition(a.LenderID) {
			return actor.ErrNotAuthorized
		}
		if a.Status == domainApp.StatusApproved {
			dto = toDTO(a)
			return nil
		}
		if !a.Status.Open() {
			return fmt.Errorf("%w: %s -> approved", domainApp.ErrInvalidTransition, a.Status)
		}

		sched, err := amortize.Compute(
			decimal.NewFromFloat(a.Amount),
			decimal.NewFromFloat(a.InterestRate),
			a.TermMonths,
		)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		a.MonthlyPayment = sched.MonthlyPayment.InexactFloat64()
		a.TotalPayment = sched.TotalPayment.InexactFloat64()
		a.TotalInterest = sched.TotalInterest.InexactFloat64()
		a.Status = domainApp.StatusApproved
		a.ApprovedAt = &now
		a.OpenKey = nil
		a.StateUpdatedAt = now
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		approved = a
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err)
	}

	if approved != nil {
		u.notifyDecision(ctx, approved, domainNotif.TypeApproved)
	}
	return dto, nil
}

// Reject transitions pending|review -> rejected. Idempotent on an already
// rejected application.
func (u *Usecase) Reject(ctx context.Context, applicationID string, act actor.Actor) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	var rejected *domainApp.Application

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.Application) error {
		if !act.CanTransition(a.LenderID) {
			return actor.ErrNotAuthorized
		}
		if a.Status == domainApp.StatusRejected {
			dto = toDTO(a)
			return nil
		}
		if !a.Status.Open() {
			return fmt.Errorf("%w: %s -> rejected", domainApp.ErrInvalidTransition, a.Status)
		}

		a.Status = domainApp.StatusRejected
		a.OpenKey = nil
		a.StateUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		rejected = a
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err)
	}

	if rejected != nil {
		u.notifyDecision(ctx, rejected, domainNotif.TypeRejected)
	}
	return dto, nil
}

// Escalate moves pending -> review when staff need more information before
// deciding. No other source state is valid.
func (u *Usecase) Escalate(ctx context.Context, applicationID string, act actor.Actor) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.Application) error {
		if !act.CanTransition(a.LenderID) {
			return actor.ErrNotAuthorized
		}
		if a.Status != domainApp.StatusPending {
			return fmt.Errorf("%w: %s -> review", domainApp.ErrInvalidTransition, a.Status)
		}

		a.Status = domainApp.StatusReview
		a.StateUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err)
	}
	return dto, nil
}

// RecordPayment appends a ledger row against an approved application and
// returns the new remaining balance.
func (u *Usecase) RecordPayment(ctx context.Context, applicationID string, act actor.Actor, in PaymentInput) (*PaymentDTO, error) {
	var dto *PaymentDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.Application) error {
		if !act.CanTransition(a.LenderID) {
			return actor.ErrNotAuthorized
		}
		if a.Status != domainApp.StatusApproved {
			return fmt.Errorf("%w: payments only apply to approved loans, status is %s",
				domainApp.ErrInvalidTransition, a.Status)
		}
		if in.Amount <= 0 {
			return fmt.Errorf("%w: amount must be positive, got %.2f", domainPayment.ErrInvalidPayment, in.Amount)
		}

		paid, err := r.Payments.SumByApplicationID(ctx, a.ID)
		if err != nil {
			return err
		}
		rem := decimal.NewFromFloat(a.TotalPayment).Sub(decimal.NewFromFloat(paid))
		amt := decimal.NewFromFloat(in.Amount)
		if amt.GreaterThan(rem) {
			return fmt.Errorf("%w: %.2f exceeds remaining balance %s", domainPayment.ErrInvalidPayment, in.Amount, rem)
		}

		now := time.Now().UTC()
		p := &domainPayment.Payment{
			PaymentID:     id.NewID32(),
			ApplicationID: a.ID,
			Amount:        in.Amount,
			Method:        in.Method,
			Reference:     in.Reference,
			PaidAt:        now,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		after := rem.Sub(amt)
		dto = &PaymentDTO{
			PaymentID:        p.PaymentID,
			ApplicationID:    a.ApplicationID,
			Amount:           in.Amount,
			RemainingBalance: after.InexactFloat64(),
			Settled:          after.Sign() == 0,
			PaidAt:           now,
		}
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err)
	}
	return dto, nil
}

// Rate records the borrower's satisfaction rating on an approved loan.
func (u *Usecase) Rate(ctx context.Context, applicationID string, rating float64) (*ApplicationDTO, error) {
	if rating < 0.5 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0.5 and 5.0, got %.1f", rating)
	}
	var dto *ApplicationDTO

	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.Application) error {
		if a.Status != domainApp.StatusApproved {
			return fmt.Errorf("%w: only approved loans can be rated, status is %s",
				domainApp.ErrInvalidTransition, a.Status)
		}
		a.Rating = &rating
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, mapTxErr(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapTxErr(err)
	}
	return toDTO(a), nil
}

func (u *Usecase) notifyDecision(ctx context.Context, a *domainApp.Application, typ domainNotif.Type) {
	u.notify(ctx, domainNotif.Event{
		Type:           typ,
		LenderID:       a.LenderID,
		RecipientEmail: a.Email,
		ApplicationID:  a.ApplicationID,
		Message:        fmt.Sprintf("Application %s is %s", a.ApplicationID, a.Status),
	})
}

func (u *Usecase) notify(ctx context.Context, ev domainNotif.Event) {
	if u.notifier == nil {
		log.Printf("notifier not configured, dropping %s event for %s", ev.Type, ev.ApplicationID)
		return
	}
	u.notifier.Notify(ctx, ev)
}

func mapTxErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainApp.ErrNotFound
	}
	return err
}

func toDTO(a *domainApp.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:  a.ApplicationID,
		LenderID:       a.LenderID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		ProductType:    a.ProductType,
		Amount:         a.Amount,
		TermMonths:     a.TermMonths,
		InterestRate:   a.InterestRate,
		MonthlyPayment: a.MonthlyPayment,
		TotalPayment:   a.TotalPayment,
		TotalInterest:  a.TotalInterest,
		Status:         string(a.Status),
		Rating:         a.Rating,
		ApprovedAt:     a.ApprovedAt,
		CreatedAt:      a.CreatedAt,
	}
}
