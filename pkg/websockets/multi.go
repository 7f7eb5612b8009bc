package websockets

import "context"

// MultiPublisher fans a message out to several publishers. Every publisher is tried;
// the first error is returned.
type MultiPublisher []Publisher

var _ Publisher = MultiPublisher(nil)

// Publish sends message through every publisher in order.
func (m MultiPublisher) Publish(ctx context.Context, message Message) error {
	var firstErr error
	for _, p := range m {
		if err := p.Publish(ctx, message); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
