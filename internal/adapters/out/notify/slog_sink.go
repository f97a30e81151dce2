// Package notify delivers order event notifications. The production build
// logs them; SMS and push delivery plug in behind the same sink interface.
package notify

import (
	"context"
	"log/slog"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/ports"
)

var _ ports.NotificationSink = &SlogSink{}

// SlogSink writes notifications to the structured log. It never fails the
// calling operation; the sink contract is fire-and-forget.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{
		logger: logger.With("component", "notification_sink"),
	}
}

// Notify records one notification.
func (s *SlogSink) Notify(ctx context.Context, recipientID kernel.UUID, event string, message string) {
	s.logger.InfoContext(ctx, "notification",
		"recipient", recipientID.String(),
		"event", event,
		"message", message,
	)
}
