package application

import (
	"time"

	"avendro-backend/internal/domain/lender"
)

type CreateInput struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth time.Time

	LenderID     string
	ProductType  lender.ProductType
	Amount       float64
	TermMonths   int
	InterestRate float64
}

type PaymentInput struct {
	Amount    float64
	Method    string
	Reference string
}

type ApplicationDTO struct {
	ApplicationID string             `json:"application_id"`
	LenderID      string             `json:"lender_id"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Email         string             `json:"email"`
	ProductType   lender.ProductType `json:"product_type"`

	Amount       float64 `json:"amount"`
	TermMonths   int     `json:"term_months"`
	InterestRate float64 `json:"interest_rate"`

	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`

	Status     string     `json:"status"`
	Rating     *float64   `json:"rating,omitempty"`
	Note       string     `json:"note,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type PaymentDTO struct {
	PaymentID        string    `json:"payment_id"`
	ApplicationID    string    `json:"application_id"`
	Amount           float64   `json:"amount"`
	RemainingBalance float64   `json:"remaining_balance"`
	Settled          bool      `json:"settled"`
	PaidAt           time.Time `json:"paid_at"`
}
