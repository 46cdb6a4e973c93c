package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsMethod = "org.freedesktop.Notifications.Notify"
)

// BusClient defines the D-Bus operations used to post notifications.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/bus_client_mock.go -package=mocks github.com/genricoloni/hyprarrange/internal/notify BusClient
type BusClient interface {
	// Notify posts a notification and returns its server-assigned id
	Notify(ctx context.Context, appName, summary, body string, timeoutMs int32) (uint32, error)

	// Close closes the D-Bus connection
	Close() error
}

// StdBusClient is the real implementation using godbus
type StdBusClient struct {
	conn *dbus.Conn
}

// NewStdBusClient creates a real D-Bus client connected to the session bus
func NewStdBusClient() (BusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdBusClient{conn: conn}, nil
}

// Notify calls org.freedesktop.Notifications.Notify
func (c *StdBusClient) Notify(ctx context.Context, appName, summary, body string, timeoutMs int32) (uint32, error) {
	var id uint32
	obj := c.conn.Object(notificationsDest, dbus.ObjectPath(notificationsPath))
	err := obj.CallWithContext(ctx, notificationsMethod, 0,
		appName,
		uint32(0), // replaces_id
		"",        // app_icon
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		timeoutMs,
	).Store(&id)
	return id, err
}

// Close closes the D-Bus connection
func (c *StdBusClient) Close() error {
	return c.conn.Close()
}
