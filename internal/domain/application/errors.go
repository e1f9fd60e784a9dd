package application

import (
	"errors"
	"fmt"

	"avendro-backend/internal/domain/lender"
)

var (
	ErrNotFound             = errors.New("application not found")
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrDuplicateApplication = errors.New("duplicate application")
	ErrRejectedAtIntake     = errors.New("application rejected at intake")
)

type IntakeRejectionKind string

const (
	IntakeActiveObligation  IntakeRejectionKind = "active_obligation"
	IntakeOpenApplication   IntakeRejectionKind = "open_application"
	IntakeInvalidTerms      IntakeRejectionKind = "invalid_terms"
	IntakeLenderNotApproved IntakeRejectionKind = "lender_not_approved"
)

// IntakeRejection is the structured reason a create was refused before any
// record existed. It unwraps to ErrRejectedAtIntake so callers can match the
// kind with errors.Is and still read the detail.
type IntakeRejection struct {
	Kind IntakeRejectionKind

	// populated for IntakeActiveObligation
	OutstandingBalance float64
	LenderNames        []string

	// populated for IntakeInvalidTerms
	Violations []lender.Violation
}

func (e *IntakeRejection) Error() string {
	switch e.Kind {
	case IntakeActiveObligation:
		return fmt.Sprintf("%v: outstanding balance %.2f with %v",
			ErrRejectedAtIntake, e.OutstandingBalance, e.LenderNames)
	case IntakeOpenApplication:
		return fmt.Sprintf("%v: an application with this lender is awaiting review", ErrRejectedAtIntake)
	case IntakeInvalidTerms:
		return fmt.Sprintf("%v: %d constraint violation(s)", ErrRejectedAtIntake, len(e.Violations))
	case IntakeLenderNotApproved:
		return fmt.Sprintf("%v: lender is not approved to accept applications", ErrRejectedAtIntake)
	}
	return ErrRejectedAtIntake.Error()
}

func (e *IntakeRejection) Unwrap() error { return ErrRejectedAtIntake }

// AsIntakeRejection extracts the structured rejection, if err carries one.
func AsIntakeRejection(err error) (*IntakeRejection, bool) {
	var ir *IntakeRejection
	if errors.As(err, &ir) {
		return ir, true
	}
	return nil, false
}
