package notification

import "time"

type Type string

const (
	TypeNewApplication Type = "new_application"
	TypeApproved       Type = "approved"
	TypeRejected       Type = "rejected"
	TypeLenderApproved Type = "lender_approved"
	TypeLenderDeclined Type = "lender_declined"
)

// Notification is a persisted inbox record for a lender's portal.
type Notification struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	LenderID      string    `gorm:"size:32;index:idx_notifications_lender" json:"lender_id"`
	Type          Type      `gorm:"size:50" json:"type"`
	Message       string    `gorm:"size:255" json:"message"`
	ApplicationID string    `gorm:"size:32" json:"application_id,omitempty"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
