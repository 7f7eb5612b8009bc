package storage

import "context"

// WebSocketManager defines the interface for tracking the websocket clients that receive
// wallet notifications.
type WebSocketManager interface {
	// AddConnection registers a newly connected client.
	AddConnection(ctx context.Context, connectionID string) error
	// RemoveConnection forgets a client after it disconnects or goes stale.
	RemoveConnection(ctx context.Context, connectionID string) error
	// GetAllConnections lists every registered client.
	GetAllConnections(ctx context.Context) ([]string, error)
}
