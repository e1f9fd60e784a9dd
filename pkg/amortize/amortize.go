package amortize

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidLoanParameters = errors.New("invalid loan parameters")

var (
	oneHundred  = decimal.NewFromInt(100)
	twelve      = decimal.NewFromInt(12)
	one         = decimal.NewFromInt(1)
	moneyPlaces = int32(2)
)

// Schedule holds the computed repayment figures for a fixed-rate loan.
// All values are rounded to 2 decimal places, half away from zero
// (conventional currency rounding, not banker's).
type Schedule struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// Compute derives monthly payment, total payment and total interest from
// principal, annual interest rate (percent) and term in months.
//
// TotalPayment is pinned as round(monthly)*term, so a zero-rate loan of
// 1000 over 12 months totals 999.96, not 1000.00. TotalInterest is
// TotalPayment - principal and may be slightly negative at zero rate.
//
// Pure and deterministic; safe for concurrent use.
func Compute(principal, annualRatePercent decimal.Decimal, termMonths int) (Schedule, error) {
	if principal.Sign() <= 0 {
		return Schedule{}, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidLoanParameters, principal)
	}
	if termMonths <= 0 {
		return Schedule{}, fmt.Errorf("%w: term must be positive, got %d months", ErrInvalidLoanParameters, termMonths)
	}
	if annualRatePercent.Sign() < 0 {
		return Schedule{}, fmt.Errorf("%w: rate must be non-negative, got %s", ErrInvalidLoanParameters, annualRatePercent)
	}

	term := decimal.NewFromInt(int64(termMonths))

	// monthly fractional rate: percent / 100 / 12
	r := annualRatePercent.Div(oneHundred).Div(twelve)

	var monthly decimal.Decimal
	if r.IsZero() {
		// straight-line, no interest
		monthly = principal.Div(term)
	} else {
		// P * r * (1+r)^n / ((1+r)^n - 1)
		factor := one.Add(r).Pow(term)
		monthly = principal.Mul(r).Mul(factor).Div(factor.Sub(one))
	}
	monthly = monthly.Round(moneyPlaces)

	total := monthly.Mul(term).Round(moneyPlaces)
	interest := total.Sub(principal).Round(moneyPlaces)

	return Schedule{
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  interest,
	}, nil
}
