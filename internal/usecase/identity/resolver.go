package identity

import (
	"context"

	"github.com/shopspring/decimal"

	"avendro-backend/internal/domain/application"
	"avendro-backend/internal/domain/borrower"
	"avendro-backend/internal/domain/lender"
	"avendro-backend/internal/domain/payment"
)

type Candidate struct {
	FirstName string
	LastName  string
	Email     string
}

type Reason string

const (
	ReasonActiveObligation Reason = "active_obligation"
	ReasonOpenApplication  Reason = "open_application"
	ReasonPriorRejection   Reason = "prior_rejection"
	ReasonSettledHistory   Reason = "settled_history"
	ReasonNone             Reason = "none"
)

// Decision classifies a candidate's history before a new application is
// accepted. When Blocked is false, Reason/Note are informational only.
type Decision struct {
	Fingerprint string
	Blocked     bool
	Reason      Reason
	Note        string

	// set for ReasonActiveObligation
	OutstandingBalance float64
	LenderNames        []string
}

// Resolver is the single place duplicate detection happens; the matching
// rule lives in borrower.Fingerprint and nowhere else.
type Resolver struct {
	apps     application.Repository
	payments payment.Repository
	lenders  lender.Repository
}

func NewResolver(apps application.Repository, payments payment.Repository, lenders lender.Repository) *Resolver {
	return &Resolver{apps: apps, payments: payments, lenders: lenders}
}

// Resolve is read-only and applies a fixed precedence, stopping at the first
// match:
//
//  1. approved with remaining balance > 0 at ANY lender -> blocked
//  2. open (pending/review) at the lender being applied to -> blocked
//  3. rejected at the lender being applied to -> allowed, with note
//  4. approved and fully settled at ANY lender -> allowed, with note
//  5. no history -> allowed
//
// Outstanding debt anywhere blocks everywhere; pending and rejected history
// only matter at the lender being applied to, since another lender's open
// review is none of a new lender's concern.
func (r *Resolver) Resolve(ctx context.Context, cand Candidate, lenderID string) (Decision, error) {
	fp := borrower.Fingerprint(cand.FirstName, cand.LastName, cand.Email)
	d := Decision{Fingerprint: fp, Reason: ReasonNone}

	history, err := r.apps.ListByFingerprint(ctx, fp)
	if err != nil {
		return Decision{}, err
	}
	if len(history) == 0 {
		return d, nil
	}

	approvedIDs := make([]uint64, 0, len(history))
	for _, a := range history {
		if a.Status == application.StatusApproved {
			approvedIDs = append(approvedIDs, a.ID)
		}
	}
	var paid map[uint64]float64
	if len(approvedIDs) > 0 {
		paid, err = r.payments.TotalsByApplicationIDs(ctx, approvedIDs)
		if err != nil {
			return Decision{}, err
		}
	}

	outstanding := decimal.Zero
	var debtors []string
	settled := false
	for _, a := range history {
		if a.Status != application.StatusApproved {
			continue
		}
		rem := remaining(a.TotalPayment, paid[a.ID])
		if rem.Sign() > 0 {
			outstanding = outstanding.Add(rem)
			debtors = append(debtors, r.lenderName(ctx, a.LenderID))
		} else {
			settled = true
		}
	}
	if len(debtors) > 0 {
		d.Blocked = true
		d.Reason = ReasonActiveObligation
		d.OutstandingBalance = outstanding.InexactFloat64()
		d.LenderNames = debtors
		d.Note = "outstanding loan balance must be settled before applying"
		return d, nil
	}

	for _, a := range history {
		if a.LenderID == lenderID && a.Status.Open() {
			d.Blocked = true
			d.Reason = ReasonOpenApplication
			d.Note = "an application with this lender is awaiting review"
			return d, nil
		}
	}

	for _, a := range history {
		if a.LenderID == lenderID && a.Status == application.StatusRejected {
			d.Reason = ReasonPriorRejection
			d.Note = "a prior application with this lender was rejected"
			return d, nil
		}
	}

	if settled {
		d.Reason = ReasonSettledHistory
		d.Note = "borrower has fully settled prior loans"
		return d, nil
	}

	return d, nil
}

func remaining(totalPayment, paid float64) decimal.Decimal {
	rem := decimal.NewFromFloat(totalPayment).Sub(decimal.NewFromFloat(paid))
	if rem.Sign() < 0 {
		return decimal.Zero
	}
	return rem
}

func (r *Resolver) lenderName(ctx context.Context, lenderID string) string {
	l, err := r.lenders.GetByLenderID(ctx, lenderID)
	if err != nil || l == nil {
		return lenderID
	}
	return l.Name
}
