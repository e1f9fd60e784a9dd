package lender

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"avendro-backend/internal/domain/actor"
	domainLender "avendro-backend/internal/domain/lender"
	domainNotif "avendro-backend/internal/domain/notification"
	"avendro-backend/pkg/id"
)

type Usecase struct {
	repo     domainLender.Repository
	notifier domainNotif.Notifier
}

func NewUsecase(repo domainLender.Repository, notifier domainNotif.Notifier) *Usecase {
	return &Usecase{repo: repo, notifier: notifier}
}

// Register persists a new lender with its published constraints. Inverted
// bounds and unknown products are rejected here, at configuration time, so
// application validation never has to second-guess the ranges.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*LenderDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domainLender.ErrMisconfigured)
	}
	if len(in.Products) == 0 {
		return nil, fmt.Errorf("%w: at least one loan product is required", domainLender.ErrMisconfigured)
	}
	for _, p := range in.Products {
		if !p.Known() {
			return nil, fmt.Errorf("%w: unknown product type %q", domainLender.ErrMisconfigured, p)
		}
	}
	if in.MinLoanAmount < 0 || in.MinInterestRate < 0 || in.MinLoanTerm < 1 {
		return nil, fmt.Errorf("%w: lower bounds must be non-negative (term >= 1)", domainLender.ErrMisconfigured)
	}

	l := &domainLender.Lender{
		LenderID:         id.NewID32(),
		Name:             in.Name,
		ContactEmail:     in.ContactEmail,
		MinLoanAmount:    in.MinLoanAmount,
		MaxLoanAmount:    in.MaxLoanAmount,
		MinInterestRate:  in.MinInterestRate,
		MaxInterestRate:  in.MaxInterestRate,
		MinLoanTerm:      in.MinLoanTerm,
		MaxLoanTerm:      in.MaxLoanTerm,
		Products:         in.Products,
		ProcessingFeePct: in.ProcessingFeePct,
		LatePaymentFee:   in.LatePaymentFee,
		Approved:         false,
	}
	if err := l.CheckBounds(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Approve flips the lender onto the active roster. Admin only.
func (u *Usecase) Approve(ctx context.Context, lenderID string, act actor.Actor) (*LenderDTO, error) {
	return u.setApproved(ctx, lenderID, act, true)
}

// Decline takes the lender off the roster (or never admits it). Admin only.
func (u *Usecase) Decline(ctx context.Context, lenderID string, act actor.Actor) (*LenderDTO, error) {
	return u.setApproved(ctx, lenderID, act, false)
}

func (u *Usecase) setApproved(ctx context.Context, lenderID string, act actor.Actor, approved bool) (*LenderDTO, error) {
	if !act.IsAdmin() {
		return nil, actor.ErrNotAuthorized
	}
	l, err := u.get(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	l.Approved = approved
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}

	typ := domainNotif.TypeLenderApproved
	msg := fmt.Sprintf("Registration for %s has been approved", l.Name)
	if !approved {
		typ = domainNotif.TypeLenderDeclined
		msg = fmt.Sprintf("Registration for %s has been declined", l.Name)
	}
	if u.notifier != nil {
		u.notifier.Notify(ctx, domainNotif.Event{
			Type:           typ,
			LenderID:       l.LenderID,
			RecipientEmail: l.ContactEmail,
			Message:        msg,
		})
	} else {
		log.Printf("notifier not configured, dropping %s event for lender %s", typ, l.LenderID)
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, lenderID string) (*LenderDTO, error) {
	l, err := u.get(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) get(ctx context.Context, lenderID string) (*domainLender.Lender, error) {
	l, err := u.repo.GetByLenderID(ctx, lenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLender.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func toDTO(l *domainLender.Lender) *LenderDTO {
	return &LenderDTO{
		LenderID:        l.LenderID,
		Name:            l.Name,
		ContactEmail:    l.ContactEmail,
		MinLoanAmount:   l.MinLoanAmount,
		MaxLoanAmount:   l.MaxLoanAmount,
		MinInterestRate: l.MinInterestRate,
		MaxInterestRate: l.MaxInterestRate,
		MinLoanTerm:     l.MinLoanTerm,
		MaxLoanTerm:     l.MaxLoanTerm,
		Products:        l.Products,
		Approved:        l.Approved,
		CreatedAt:       l.CreatedAt,
	}
}
