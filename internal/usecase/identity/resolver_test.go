package identity

import (
	"context"
	"testing"

	"avendro-backend/internal/domain/application"
	"avendro-backend/internal/domain/borrower"
	"avendro-backend/internal/domain/lender"
	"avendro-backend/internal/testutil/appmock"
	"avendro-backend/internal/testutil/lendermock"
	"avendro-backend/internal/testutil/paymock"
)

const (
	lenderA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	lenderB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

var cand = Candidate{FirstName: "Maria", LastName: "Santos", Email: "maria@example.com"}

func candFP() string { return borrower.Fingerprint(cand.FirstName, cand.LastName, cand.Email) }

func newResolver(history []application.Application, paid map[uint64]float64) *Resolver {
	apps := &appmock.Repository{
		ListByFingerprintFn: func(ctx context.Context, fp string) ([]application.Application, error) {
			if fp != candFP() {
				return nil, nil
			}
			return history, nil
		},
	}
	pays := &paymock.Repository{
		TotalsByApplicationIDsFn: func(ctx context.Context, ids []uint64) (map[uint64]float64, error) {
			return paid, nil
		},
	}
	lenders := &lendermock.Repository{
		GetByLenderIDFn: func(ctx context.Context, id string) (*lender.Lender, error) {
			switch id {
			case lenderA:
				return &lender.Lender{LenderID: id, Name: "Acme Lending"}, nil
			case lenderB:
				return &lender.Lender{LenderID: id, Name: "Bright Capital"}, nil
			}
			return nil, lender.ErrNotFound
		},
	}
	return NewResolver(apps, pays, lenders)
}

func TestResolve_NoHistory_Allowed(t *testing.T) {
	r := newResolver(nil, nil)
	d, err := r.Resolve(context.Background(), cand, lenderA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked || d.Reason != ReasonNone || d.Note != "" {
		t.Fatalf("want clean allow, got %+v", d)
	}
	if d.Fingerprint != candFP() {
		t.Fatalf("fingerprint mismatch: %s", d.Fingerprint)
	}
}

func TestResolve_ActiveObligationAnywhere_BlocksEverywhere(t *testing.T) {
	// approved at A with balance outstanding; applying to B must block
	history := []application.Application{{
		ID: 1, LenderID: lenderA, Status: application.StatusApproved,
		TotalPayment: 10_661.88,
	}}
	r := newResolver(history, map[uint64]float64{1: 4_000})

	d, err := r.Resolve(context.Background(), cand, lenderB)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !d.Blocked || d.Reason != ReasonActiveObligation {
		t.Fatalf("want active-obligation block, got %+v", d)
	}
	if d.OutstandingBalance != 6_661.88 {
		t.Errorf("outstanding=%v want 6661.88", d.OutstandingBalance)
	}
	if len(d.LenderNames) != 1 || d.LenderNames[0] != "Acme Lending" {
		t.Errorf("lender names=%v", d.LenderNames)
	}
}

func TestResolve_ObligationOutranksSameLenderHistory(t *testing.T) {
	// debt at B plus a rejection at A: the obligation wins precedence
	history := []application.Application{
		{ID: 1, LenderID: lenderB, Status: application.StatusApproved, TotalPayment: 5_000},
		{ID: 2, LenderID: lenderA, Status: application.StatusRejected},
	}
	r := newResolver(history, map[uint64]float64{})

	d, err := r.Resolve(context.Background(), cand, lenderA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !d.Blocked || d.Reason != ReasonActiveObligation {
		t.Fatalf("want active-obligation block, got %+v", d)
	}
}

func TestResolve_OpenAtSameLender_Blocks(t *testing.T) {
	for _, st := range []application.Status{application.StatusPending, application.StatusReview} {
		history := []application.Application{{ID: 1, LenderID: lenderA, Status: st}}
		r := newResolver(history, nil)

		d, err := r.Resolve(context.Background(), cand, lenderA)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", st, err)
		}
		if !d.Blocked || d.Reason != ReasonOpenApplication {
			t.Fatalf("status %s: want open-application block, got %+v", st, d)
		}
	}
}

func TestResolve_PendingAtOtherLender_DoesNotBlock(t *testing.T) {
	// another lender's open review is none of the new lender's concern
	history := []application.Application{{ID: 1, LenderID: lenderB, Status: application.StatusPending}}
	r := newResolver(history, nil)

	d, err := r.Resolve(context.Background(), cand, lenderA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked {
		t.Fatalf("pending at other lender must not block: %+v", d)
	}
}

func TestResolve_RejectedAtSameLender_AllowedWithNote(t *testing.T) {
	history := []application.Application{{ID: 1, LenderID: lenderA, Status: application.StatusRejected}}
	r := newResolver(history, nil)

	d, err := r.Resolve(context.Background(), cand, lenderA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked || d.Reason != ReasonPriorRejection || d.Note == "" {
		t.Fatalf("want allow with rejection note, got %+v", d)
	}

	// same rejection, different lender: clean allow, no note
	d, err = r.Resolve(context.Background(), cand, lenderB)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked || d.Reason != ReasonNone || d.Note != "" {
		t.Fatalf("rejection at A must be invisible to B, got %+v", d)
	}
}

func TestResolve_SettledAnywhere_AllowedWithNote(t *testing.T) {
	history := []application.Application{{
		ID: 1, LenderID: lenderB, Status: application.StatusApproved, TotalPayment: 5_000,
	}}
	r := newResolver(history, map[uint64]float64{1: 5_000})

	d, err := r.Resolve(context.Background(), cand, lenderA)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked || d.Reason != ReasonSettledHistory {
		t.Fatalf("want settled-history allow, got %+v", d)
	}
}

func TestResolve_OverpaidLoanCountsAsSettled(t *testing.T) {
	history := []application.Application{{
		ID: 1, LenderID: lenderA, Status: application.StatusApproved, TotalPayment: 5_000,
	}}
	r := newResolver(history, map[uint64]float64{1: 5_100})

	d, err := r.Resolve(context.Background(), cand, lenderB)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Blocked {
		t.Fatalf("overpaid loan must not block: %+v", d)
	}
	if d.Reason != ReasonSettledHistory {
		t.Fatalf("want settled history, got %+v", d)
	}
}
