package websockets

import "context"

// NoOpPublisher is a publisher that drops every message.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}

var _ Publisher = (*NoOpPublisher)(nil)
