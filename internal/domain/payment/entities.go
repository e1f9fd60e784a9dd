package payment

import (
	"errors"
	"time"
)

var ErrInvalidPayment = errors.New("invalid payment")

// Payment is one ledger row against an approved application. The sum of a
// loan's rows against its TotalPayment is the authoritative remaining
// balance; nothing else is.
type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// FK to loan_applications.id (numeric)
	ApplicationID uint64    `gorm:"column:application_id;not null;index:idx_payments_application" json:"-"`
	Amount        float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Method        string    `gorm:"size:30" json:"method"`
	Reference     string    `gorm:"size:64" json:"reference"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
