package application

import (
	"time"

	"gorm.io/gorm"

	"avendro-backend/internal/domain/lender"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReview   Status = "review"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition may leave this status.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Open reports whether the application still occupies the borrower's slot
// at its lender (pending or review).
func (s Status) Open() bool { return s == StatusPending || s == StatusReview }

// Application is one borrower's request to one lender. The borrower identity
// is snapshotted onto the row; Fingerprint ties rows for the same person
// together across lenders.
type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_application_id_active" json:"application_id"`

	FirstName   string    `gorm:"size:50" json:"first_name"`
	LastName    string    `gorm:"size:50" json:"last_name"`
	Email       string    `gorm:"size:255" json:"email"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	Fingerprint string    `gorm:"size:64;index:idx_applications_fingerprint" json:"-"`

	LenderID    string             `gorm:"size:32;index:idx_applications_lender" json:"lender_id"`
	ProductType lender.ProductType `gorm:"size:50" json:"product_type"`

	Amount       float64 `gorm:"type:decimal(12,2)" json:"amount"`
	TermMonths   int     `gorm:"column:term_months" json:"term_months"`
	InterestRate float64 `gorm:"type:decimal(5,2)" json:"interest_rate"`

	// Derived from (Amount, InterestRate, TermMonths); recomputed, never
	// patched independently.
	MonthlyPayment float64 `gorm:"type:decimal(14,2)" json:"monthly_payment"`
	TotalPayment   float64 `gorm:"type:decimal(14,2)" json:"total_payment"`
	TotalInterest  float64 `gorm:"type:decimal(14,2)" json:"total_interest"`

	Status Status `gorm:"type:enum('pending','review','approved','rejected');default:'pending'" json:"status"`

	// OpenKey is fingerprint:lender_id while the application is open and
	// NULL once terminal. The unique index on it is what serializes two
	// concurrent submissions for the same borrower and lender.
	OpenKey *string `gorm:"size:97;uniqueIndex:ux_applications_open_key" json:"-"`

	Rating     *float64   `gorm:"type:decimal(2,1)" json:"rating,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }

// OpenKeyFor builds the uniqueness key for a non-terminal application.
func OpenKeyFor(fingerprint, lenderID string) string {
	return fingerprint + ":" + lenderID
}
