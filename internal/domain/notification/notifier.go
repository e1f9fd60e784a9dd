package notification

import "context"

type Event struct {
	Type           Type
	LenderID       string
	RecipientEmail string
	ApplicationID  string
	Message        string
}

// Notifier delivers events best-effort. Implementations log failures and
// never propagate them; a failed delivery must not roll back the transition
// that triggered it.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByLenderID(ctx context.Context, lenderID string) ([]Notification, error)
}
