package lender

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("lender not found")
	ErrMisconfigured = errors.New("lender misconfigured")
)

type ProductType string

const (
	ProductPersonal ProductType = "personal_loans"
	ProductBusiness ProductType = "business_loans"
	ProductSalary   ProductType = "salary_loans"
	ProductAuto     ProductType = "auto_loans"
	ProductHome     ProductType = "home_loans"
	ProductPayday   ProductType = "payday_loans"
)

func (p ProductType) Known() bool {
	switch p {
	case ProductPersonal, ProductBusiness, ProductSalary, ProductAuto, ProductHome, ProductPayday:
		return true
	}
	return false
}

// Lender is a company offering loan products under published constraints.
// Approved gates whether applications may be created against it; it is a
// roster decision distinct from any account-enabled flag upstream.
type Lender struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	LenderID     string `gorm:"size:32;uniqueIndex:ux_lenders_lender_id_active"`
	Name         string `gorm:"size:255"`
	ContactEmail string `gorm:"size:255"`

	MinLoanAmount   float64 `gorm:"type:decimal(12,2)"`
	MaxLoanAmount   float64 `gorm:"type:decimal(12,2)"`
	MinInterestRate float64 `gorm:"type:decimal(5,2)"`
	MaxInterestRate float64 `gorm:"type:decimal(5,2)"`
	MinLoanTerm     int     `gorm:"column:min_loan_term"`
	MaxLoanTerm     int     `gorm:"column:max_loan_term"`

	Products []ProductType `gorm:"serializer:json;type:text"`

	ProcessingFeePct *float64 `gorm:"type:decimal(4,2)"`
	LatePaymentFee   *float64 `gorm:"type:decimal(8,2)"`

	Approved  bool `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Lender) TableName() string { return "lenders" }

// CheckBounds enforces min <= max for every bounded pair. Violations are
// rejected at lender-configuration time; ValidateTerms rechecks defensively.
func (l *Lender) CheckBounds() error {
	if l.MinLoanAmount > l.MaxLoanAmount {
		return fmt.Errorf("%w: min_loan_amount %.2f > max_loan_amount %.2f",
			ErrMisconfigured, l.MinLoanAmount, l.MaxLoanAmount)
	}
	if l.MinInterestRate > l.MaxInterestRate {
		return fmt.Errorf("%w: min_interest_rate %.2f > max_interest_rate %.2f",
			ErrMisconfigured, l.MinInterestRate, l.MaxInterestRate)
	}
	if l.MinLoanTerm > l.MaxLoanTerm {
		return fmt.Errorf("%w: min_loan_term %d > max_loan_term %d",
			ErrMisconfigured, l.MinLoanTerm, l.MaxLoanTerm)
	}
	return nil
}

func (l *Lender) Offers(p ProductType) bool {
	for _, o := range l.Products {
		if o == p {
			return true
		}
	}
	return false
}
