package notify

import (
	"context"
	"fmt"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

const (
	appName        = "hyprarrange"
	defaultTimeout = 5000
)

// DesktopNotifier posts freedesktop notifications over the session bus.
// A connection is opened per notification; the CLI sends at most one.
type DesktopNotifier struct {
	logger  *zap.Logger
	connect func() (BusClient, error)
}

// NewDesktopNotifier creates a notifier backed by the session bus
func NewDesktopNotifier(logger *zap.Logger) *DesktopNotifier {
	return &DesktopNotifier{
		logger:  logger,
		connect: NewStdBusClient,
	}
}

// Notify sends a notification
func (n *DesktopNotifier) Notify(ctx context.Context, summary, body string) error {
	client, err := n.connect()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			n.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}()

	id, err := client.Notify(ctx, appName, summary, body, defaultTimeout)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.logger.Debug("Notification sent", zap.Uint32("id", id), zap.String("summary", summary))
	return nil
}

// NopNotifier discards notifications
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(context.Context, string, string) error { return nil }

// NewNotifier returns a DesktopNotifier, or a NopNotifier when notifications
// are disabled in configuration
func NewNotifier(logger *zap.Logger, cfg domain.Config) domain.Notifier {
	if !cfg.NotifyEnabled() {
		logger.Debug("Desktop notifications disabled")
		return NopNotifier{}
	}
	return NewDesktopNotifier(logger)
}
