package ports

import (
	"context"

	"farmlink/internal/core/domain/model/kernel"
)

// NotificationSink delivers order event notifications to parties.
// Notification delivery is fire-and-forget: implementations must never fail
// the calling operation, a lost notification is acceptable, a lost order
// update is not.
type NotificationSink interface {
	Notify(ctx context.Context, recipientID kernel.UUID, event string, message string)
}
