package lender

import (
	"time"

	domainLender "avendro-backend/internal/domain/lender"
)

type RegisterInput struct {
	Name         string
	ContactEmail string

	MinLoanAmount   float64
	MaxLoanAmount   float64
	MinInterestRate float64
	MaxInterestRate float64
	MinLoanTerm     int
	MaxLoanTerm     int

	Products []domainLender.ProductType

	ProcessingFeePct *float64
	LatePaymentFee   *float64
}

type LenderDTO struct {
	LenderID     string `json:"lender_id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`

	MinLoanAmount   float64 `json:"min_loan_amount"`
	MaxLoanAmount   float64 `json:"max_loan_amount"`
	MinInterestRate float64 `json:"min_interest_rate"`
	MaxInterestRate float64 `json:"max_interest_rate"`
	MinLoanTerm     int     `json:"min_loan_term"`
	MaxLoanTerm     int     `json:"max_loan_term"`

	Products []domainLender.ProductType `json:"products"`

	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
