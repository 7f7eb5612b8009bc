package websockets

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// JSONWriter is the part of a websocket connection the hub writes to.
// *websocket.Conn from gorilla/websocket satisfies it.
type JSONWriter interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub tracks websocket connections held by this process and broadcasts to them.
// It is used by the local development server in place of API Gateway.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*hubConn
}

type hubConn struct {
	writeMu sync.Mutex
	w       JSONWriter
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: map[string]*hubConn{}}
}

var _ Publisher = (*Hub)(nil)

// Register adds a connection under id.
func (h *Hub) Register(id string, w JSONWriter) {
	h.mu.Lock()
	h.conns[id] = &hubConn{w: w}
	h.mu.Unlock()
}

// Unregister removes the connection with id.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// Connections returns the registered connection IDs in sorted order.
func (h *Hub) Connections() []string {
	h.mu.Lock()
	ids := make([]string, 0, len(h.conns))
	for id := range h.conns {
		ids = append(ids, id)
	}
	h.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// Publish writes message to every registered connection. A connection that fails
// to accept the write is closed and unregistered.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	h.mu.Lock()
	targets := make(map[string]*hubConn, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.Unlock()

	for id, c := range targets {
		c.writeMu.Lock()
		err := c.w.WriteJSON(message)
		c.writeMu.Unlock()
		if err != nil {
			slog.Info("dropping local connection after failed write", "connectionId", id, "error", err)
			h.Unregister(id)
			if err := c.w.Close(); err != nil {
				slog.Error("failed to close local connection", "connectionId", id, "error", err)
			}
		}
	}
	return nil
}
