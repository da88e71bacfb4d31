package commands

import (
	"context"
	"log/slog"
	"time"

	"chefbook/internal/infra/notify"

	"github.com/google/uuid"
)

// Notifier pushes realtime events after the durable notification row has
// committed. Delivery failures are logged and swallowed; they must never
// unwind order state.
type Notifier interface {
	Publish(ctx context.Context, event notify.Event) error
}

func publishEvent(ctx context.Context, notifier Notifier, userID uuid.UUID, kind, title string) {
	if notifier == nil || userID == uuid.Nil {
		return
	}
	event := notify.Event{
		UserID: userID,
		Type:   kind,
		Title:  title,
		SentAt: time.Now(),
	}
	if err := notifier.Publish(ctx, event); err != nil {
		slog.Warn("realtime notification publish failed",
			"user_id", userID.String(),
			"type", kind,
			"error", err.Error())
	}
}
