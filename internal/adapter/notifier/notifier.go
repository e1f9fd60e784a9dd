package notifier

import (
	"context"
	"log"

	notifDomain "avendro-backend/internal/domain/notification"
)

// InboxNotifier writes lender portal notifications and logs the delivery.
// Failures are logged and swallowed: a notification must never undo the
// state change that produced it.
type InboxNotifier struct {
	repo notifDomain.Repository
}

func NewInboxNotifier(repo notifDomain.Repository) *InboxNotifier {
	return &InboxNotifier{repo: repo}
}

func (n *InboxNotifier) Notify(ctx context.Context, ev notifDomain.Event) {
	if ev.LenderID != "" {
		err := n.repo.Create(ctx, &notifDomain.Notification{
			LenderID:      ev.LenderID,
			Type:          ev.Type,
			Message:       ev.Message,
			ApplicationID: ev.ApplicationID,
		})
		if err != nil {
			log.Printf("notifier: failed to store %s for lender %s: %s", ev.Type, ev.LenderID, err.Error())
		}
	}
	log.Printf("notifier: %s lender=%s application=%s: %s", ev.Type, ev.LenderID, ev.ApplicationID, ev.Message)
}
