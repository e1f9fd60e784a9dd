package lender

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"avendro-backend/internal/domain/actor"
	domainLender "avendro-backend/internal/domain/lender"
	domainNotif "avendro-backend/internal/domain/notification"
	"avendro-backend/internal/testutil/lendermock"
)

type captureNotifier struct{ events []domainNotif.Event }

func (n *captureNotifier) Notify(ctx context.Context, ev domainNotif.Event) {
	n.events = append(n.events, ev)
}

func validRegister() RegisterInput {
	return RegisterInput{
		Name:            "Acme Lending",
		ContactEmail:    "ops@acme.test",
		MinLoanAmount:   1_000,
		MaxLoanAmount:   50_000,
		MinInterestRate: 3.5,
		MaxInterestRate: 24,
		MinLoanTerm:     6,
		MaxLoanTerm:     60,
		Products:        []domainLender.ProductType{domainLender.ProductPersonal},
	}
}

func TestRegister_Success(t *testing.T) {
	var created *domainLender.Lender
	repo := &lendermock.Repository{
		CreateFn: func(ctx context.Context, l *domainLender.Lender) error {
			created = l
			return nil
		},
	}
	uc := NewUsecase(repo, &captureNotifier{})

	dto, err := uc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(dto.LenderID) != 32 {
		t.Errorf("lender id length %d", len(dto.LenderID))
	}
	if dto.Approved {
		t.Error("new lenders must start unapproved")
	}
	if created == nil || created.Name != "Acme Lending" {
		t.Errorf("persisted lender: %+v", created)
	}
}

func TestRegister_RejectsMisconfiguration(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*RegisterInput)
	}{
		{"inverted amounts", func(in *RegisterInput) { in.MinLoanAmount, in.MaxLoanAmount = 50_000, 1_000 }},
		{"inverted rates", func(in *RegisterInput) { in.MinInterestRate, in.MaxInterestRate = 24, 3.5 }},
		{"inverted terms", func(in *RegisterInput) { in.MinLoanTerm, in.MaxLoanTerm = 60, 6 }},
		{"no products", func(in *RegisterInput) { in.Products = nil }},
		{"unknown product", func(in *RegisterInput) { in.Products = []domainLender.ProductType{"crypto_loans"} }},
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"zero min term", func(in *RegisterInput) { in.MinLoanTerm = 0 }},
	}
	repo := &lendermock.Repository{
		CreateFn: func(ctx context.Context, l *domainLender.Lender) error {
			t.Fatal("Create must not be called for misconfigured input")
			return nil
		},
	}
	uc := NewUsecase(repo, &captureNotifier{})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mut(&in)
			_, err := uc.Register(context.Background(), in)
			if !errors.Is(err, domainLender.ErrMisconfigured) {
				t.Fatalf("expected ErrMisconfigured, got %v", err)
			}
		})
	}
}

func TestApprove_AdminOnly(t *testing.T) {
	l := &domainLender.Lender{LenderID: "11111111111111111111111111111111", Name: "Acme", ContactEmail: "ops@acme.test"}
	repo := &lendermock.Repository{
		GetByLenderIDFn: func(ctx context.Context, id string) (*domainLender.Lender, error) { return l, nil },
		SaveFn:          func(ctx context.Context, saved *domainLender.Lender) error { return nil },
	}
	notifier := &captureNotifier{}
	uc := NewUsecase(repo, notifier)

	if _, err := uc.Approve(context.Background(), l.LenderID, actor.Actor{Role: actor.RoleLenderStaff, LenderID: l.LenderID}); !errors.Is(err, actor.ErrNotAuthorized) {
		t.Fatalf("staff must not self-approve, got %v", err)
	}

	dto, err := uc.Approve(context.Background(), l.LenderID, actor.Actor{Role: actor.RoleAdmin})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !dto.Approved {
		t.Error("lender not approved")
	}
	if len(notifier.events) != 1 || notifier.events[0].Type != domainNotif.TypeLenderApproved {
		t.Errorf("events: %+v", notifier.events)
	}
}

func TestDecline_Notifies(t *testing.T) {
	l := &domainLender.Lender{LenderID: "11111111111111111111111111111111", Name: "Acme", Approved: true}
	repo := &lendermock.Repository{
		GetByLenderIDFn: func(ctx context.Context, id string) (*domainLender.Lender, error) { return l, nil },
		SaveFn:          func(ctx context.Context, saved *domainLender.Lender) error { return nil },
	}
	notifier := &captureNotifier{}
	uc := NewUsecase(repo, notifier)

	dto, err := uc.Decline(context.Background(), l.LenderID, actor.Actor{Role: actor.RoleAdmin})
	if err != nil {
		t.Fatalf("Decline: %v", err)
	}
	if dto.Approved {
		t.Error("lender still approved after decline")
	}
	if len(notifier.events) != 1 || notifier.events[0].Type != domainNotif.TypeLenderDeclined {
		t.Errorf("events: %+v", notifier.events)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &lendermock.Repository{
		GetByLenderIDFn: func(ctx context.Context, id string) (*domainLender.Lender, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo, &captureNotifier{})

	_, err := uc.Get(context.Background(), "22222222222222222222222222222222")
	if !errors.Is(err, domainLender.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
