package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	lenderDomain "avendro-backend/internal/domain/lender"
	notifDomain "avendro-backend/internal/domain/notification"
	paymentDomain "avendro-backend/internal/domain/payment"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type applicationSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ApplicationID string    `gorm:"size:32;column:application_id"`
	FirstName     string    `gorm:"column:first_name"`
	LastName      string    `gorm:"column:last_name"`
	Email         string    `gorm:"column:email"`
	DateOfBirth   time.Time `gorm:"column:date_of_birth"`
	Fingerprint   string    `gorm:"size:64;column:fingerprint;index"`
	LenderID      string    `gorm:"size:32;column:lender_id"`
	ProductType   string    `gorm:"column:product_type"`
	Amount        float64   `gorm:"column:amount"`
	TermMonths    int       `gorm:"column:term_months"`
	InterestRate  float64   `gorm:"column:interest_rate"`

	MonthlyPayment float64 `gorm:"column:monthly_payment"`
	TotalPayment   float64 `gorm:"column:total_payment"`
	TotalInterest  float64 `gorm:"column:total_interest"`

	Status string `gorm:"type:text;column:status"` // plain text, no enum

	// same uniqueness semantics as the mysql schema
	OpenKey *string `gorm:"size:97;column:open_key;uniqueIndex:ux_applications_open_key"`

	Rating         *float64       `gorm:"column:rating"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at"`
	StateUpdatedAt time.Time      `gorm:"column:state_updated_at"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema. TranslateError is on, as in production, so unique-key
// violations surface as gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&lenderDomain.Lender{},
		&paymentDomain.Payment{},
		&notifDomain.Notification{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
