package lender

import (
	"fmt"
	"strings"
)

// Violation names one failed constraint check: the field, what the caller
// provided, and what the lender allows.
type Violation struct {
	Field    string `json:"field"`
	Provided string `json:"provided"`
	Allowed  string `json:"allowed"`
}

type Result struct {
	Violations []Violation `json:"violations,omitempty"`
}

func (r Result) Valid() bool { return len(r.Violations) == 0 }

func (r Result) String() string {
	if r.Valid() {
		return "valid"
	}
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, fmt.Sprintf("%s=%s outside %s", v.Field, v.Provided, v.Allowed))
	}
	return strings.Join(parts, "; ")
}

// ValidateTerms checks a prospective application against the lender's
// published constraints. All checks run; the caller gets every violation at
// once rather than the first one. A lender whose own bounds are inverted
// fails fast with ErrMisconfigured.
func (l *Lender) ValidateTerms(amount float64, termMonths int, ratePercent float64, product ProductType) (Result, error) {
	if err := l.CheckBounds(); err != nil {
		return Result{}, err
	}

	var res Result
	if amount < l.MinLoanAmount || amount > l.MaxLoanAmount {
		res.Violations = append(res.Violations, Violation{
			Field:    "amount",
			Provided: fmt.Sprintf("%.2f", amount),
			Allowed:  fmt.Sprintf("[%.2f, %.2f]", l.MinLoanAmount, l.MaxLoanAmount),
		})
	}
	if termMonths < l.MinLoanTerm || termMonths > l.MaxLoanTerm {
		res.Violations = append(res.Violations, Violation{
			Field:    "term_months",
			Provided: fmt.Sprintf("%d", termMonths),
			Allowed:  fmt.Sprintf("[%d, %d]", l.MinLoanTerm, l.MaxLoanTerm),
		})
	}
	if ratePercent < l.MinInterestRate || ratePercent > l.MaxInterestRate {
		res.Violations = append(res.Violations, Violation{
			Field:    "interest_rate",
			Provided: fmt.Sprintf("%.2f", ratePercent),
			Allowed:  fmt.Sprintf("[%.2f, %.2f]", l.MinInterestRate, l.MaxInterestRate),
		})
	}
	if !l.Offers(product) {
		offered := make([]string, 0, len(l.Products))
		for _, p := range l.Products {
			offered = append(offered, string(p))
		}
		res.Violations = append(res.Violations, Violation{
			Field:    "product_type",
			Provided: string(product),
			Allowed:  "{" + strings.Join(offered, ", ") + "}",
		})
	}
	return res, nil
}
