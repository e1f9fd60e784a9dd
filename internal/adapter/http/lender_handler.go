package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	lenderDomain "avendro-backend/internal/domain/lender"
	lenderUsecase "avendro-backend/internal/usecase/lender"
)

type LenderHandler struct{ uc *lenderUsecase.Usecase }

func NewLenderHandler(uc *lenderUsecase.Usecase) *LenderHandler {
	return &LenderHandler{uc: uc}
}

type registerLenderReq struct {
	Name         string `json:"name"          validate:"required,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`

	MinLoanAmount   float64 `json:"min_loan_amount"   validate:"gte=0,dec2"`
	MaxLoanAmount   float64 `json:"max_loan_amount"   validate:"required,gt=0,dec2"`
	MinInterestRate float64 `json:"min_interest_rate" validate:"gte=0,dec2"`
	MaxInterestRate float64 `json:"max_interest_rate" validate:"gte=0,dec2"`
	MinLoanTerm     int     `json:"min_loan_term"     validate:"gte=0"`
	MaxLoanTerm     int     `json:"max_loan_term"     validate:"required,gte=1"`

	Products []string `json:"products" validate:"required,min=1"`

	ProcessingFeePct *float64 `json:"processing_fee_pct" validate:"omitempty,gte=0,lte=10,dec2"`
	LatePaymentFee   *float64 `json:"late_payment_fee"   validate:"omitempty,gte=0,dec2"`
}

func (h *LenderHandler) Register(c echo.Context) error {
	var req registerLenderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	products := make([]lenderDomain.ProductType, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, lenderDomain.ProductType(p))
	}

	dto, err := h.uc.Register(c.Request().Context(), lenderUsecase.RegisterInput{
		Name:             req.Name,
		ContactEmail:     req.ContactEmail,
		MinLoanAmount:    req.MinLoanAmount,
		MaxLoanAmount:    req.MaxLoanAmount,
		MinInterestRate:  req.MinInterestRate,
		MaxInterestRate:  req.MaxInterestRate,
		MinLoanTerm:      req.MinLoanTerm,
		MaxLoanTerm:      req.MaxLoanTerm,
		Products:         products,
		ProcessingFeePct: req.ProcessingFeePct,
		LatePaymentFee:   req.LatePaymentFee,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LenderHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("lender_id"), actorFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LenderHandler) Decline(c echo.Context) error {
	dto, err := h.uc.Decline(c.Request().Context(), c.Param("lender_id"), actorFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LenderHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("lender_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
