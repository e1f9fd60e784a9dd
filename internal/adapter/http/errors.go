package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"avendro-backend/internal/domain/actor"
	appDomain "avendro-backend/internal/domain/application"
	lenderDomain "avendro-backend/internal/domain/lender"
	paymentDomain "avendro-backend/internal/domain/payment"
	"avendro-backend/pkg/amortize"
)

// intakeRejectionBody carries the structured refusal so the portal can show
// which rule fired without parsing the message.
type intakeRejectionBody struct {
	Error              string                   `json:"error"`
	Kind               string                   `json:"kind"`
	OutstandingBalance float64                  `json:"outstanding_balance,omitempty"`
	LenderNames        []string                 `json:"lender_names,omitempty"`
	Violations         []lenderDomain.Violation `json:"violations,omitempty"`
}

// writeDomainError maps usecase errors to the API contract.
func writeDomainError(c echo.Context, err error) error {
	if ir, ok := appDomain.AsIntakeRejection(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, intakeRejectionBody{
			Error:              ir.Error(),
			Kind:               string(ir.Kind),
			OutstandingBalance: ir.OutstandingBalance,
			LenderNames:        ir.LenderNames,
			Violations:         ir.Violations,
		})
	}

	switch {
	case errors.Is(err, appDomain.ErrDuplicateApplication):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, actor.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrNotFound), errors.Is(err, lenderDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, amortize.ErrInvalidLoanParameters),
		errors.Is(err, paymentDomain.ErrInvalidPayment),
		errors.Is(err, lenderDomain.ErrMisconfigured):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
