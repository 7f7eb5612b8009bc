package storage

import "context"

// KeyValueStore is the durable key-value boundary used for small UI settings.
type KeyValueStore interface {
	// GetValue returns the stored string, or ErrKeyNotFound if the key was never set.
	GetValue(ctx context.Context, key string) (string, error)

	// SetValue stores value under key, replacing any previous value.
	SetValue(ctx context.Context, key, value string) error
}
