// Package notify delivers transient user-facing notifications ("toasts").
// Delivery is fire-and-forget: a Notifier never reports failure to its caller.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/nutstash-wallet/pkg/websockets"
	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier renders a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, body, title string)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger uses slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

// Notify logs the notification at a level matching its severity.
func (n *LogNotifier) Notify(ctx context.Context, severity Severity, body, title string) {
	level := slog.LevelInfo
	switch severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}
	n.Logger.Log(ctx, level, "notification", "severity", string(severity), "title", title, "body", body)
}

// PublisherNotifier broadcasts notifications to websocket clients as toast messages.
type PublisherNotifier struct {
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewPublisherNotifier creates a PublisherNotifier. A nil logger uses slog.Default.
func NewPublisherNotifier(publisher websockets.Publisher, logger *slog.Logger) *PublisherNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublisherNotifier{Publisher: publisher, Logger: logger}
}

// Notify publishes a toast. Publish failures are logged and swallowed.
func (n *PublisherNotifier) Notify(ctx context.Context, severity Severity, body, title string) {
	msg := websockets.Message{
		Type: websockets.MessageTypeToast,
		Payload: websockets.ToastPayload{
			ID:        uuid.New().String(),
			Severity:  string(severity),
			Title:     title,
			Body:      body,
			CreatedAt: time.Now(),
		},
	}
	if err := n.Publisher.Publish(ctx, msg); err != nil {
		n.Logger.Error("failed to publish notification", "severity", string(severity), "title", title, "error", err)
	}
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

// Notify calls every notifier.
func (m Multi) Notify(ctx context.Context, severity Severity, body, title string) {
	for _, n := range m {
		n.Notify(ctx, severity, body, title)
	}
}

// NoOp discards notifications.
type NoOp struct{}

// Notify does nothing.
func (NoOp) Notify(context.Context, Severity, string, string) {}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*PublisherNotifier)(nil)
	_ Notifier = Multi(nil)
	_ Notifier = NoOp{}
)
