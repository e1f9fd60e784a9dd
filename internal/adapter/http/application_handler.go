package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	lenderDomain "avendro-backend/internal/domain/lender"
	appUsecase "avendro-backend/internal/usecase/application"
	"avendro-backend/pkg/amortize"
)

type ApplicationHandler struct{ uc *appUsecase.Usecase }

func NewApplicationHandler(uc *appUsecase.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
	Email     string `json:"email"      validate:"required,email"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`

	LenderID     string  `json:"lender_id"     validate:"required,hex32"`
	ProductType  string  `json:"product_type"  validate:"required"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	TermMonths   int     `json:"term_months"   validate:"required,gte=1"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)

	dto, err := h.uc.Create(c.Request().Context(), appUsecase.CreateInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  dob,
		LenderID:     req.LenderID,
		ProductType:  lenderDomain.ProductType(req.ProductType),
		Amount:       req.Amount,
		TermMonths:   req.TermMonths,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("application_id"), actorFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("application_id"), actorFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Escalate(c echo.Context) error {
	dto, err := h.uc.Escalate(c.Request().Context(), c.Param("application_id"), actorFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type recordPaymentReq struct {
	Amount    float64 `json:"amount"    validate:"required,gt=0,dec2"`
	Method    string  `json:"method"    validate:"required,max=30"`
	Reference string  `json:"reference" validate:"max=64"`
}

func (h *ApplicationHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), c.Param("application_id"), actorFrom(c), appUsecase.PaymentInput{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type rateApplicationReq struct {
	Rating float64 `json:"rating" validate:"required,gte=0.5,lte=5"`
}

func (h *ApplicationHandler) Rate(c echo.Context) error {
	var req rateApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Rate(c.Request().Context(), c.Param("application_id"), req.Rating)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type paymentPreviewResp struct {
	Amount         float64 `json:"amount"`
	TermMonths     int     `json:"term_months"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type paymentPreviewReq struct {
	Amount       float64 `query:"amount"        validate:"required,gt=0,dec2"`
	TermMonths   int     `query:"term_months"   validate:"required,gte=1"`
	InterestRate float64 `query:"interest_rate" validate:"gte=0,dec2"`
}

// PaymentPreview is a pure calculator over the query terms. The application
// id in the path is not dereferenced; the caller previews what a change to
// the terms would cost before amending anything.
func (h *ApplicationHandler) PaymentPreview(c echo.Context) error {
	var req paymentPreviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	sched, err := amortize.Compute(decimal.NewFromFloat(req.Amount), decimal.NewFromFloat(req.InterestRate), req.TermMonths)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, paymentPreviewResp{
		Amount:         req.Amount,
		TermMonths:     req.TermMonths,
		InterestRate:   req.InterestRate,
		MonthlyPayment: sched.MonthlyPayment.InexactFloat64(),
		TotalPayment:   sched.TotalPayment.InexactFloat64(),
		TotalInterest:  sched.TotalInterest.InexactFloat64(),
	})
}
