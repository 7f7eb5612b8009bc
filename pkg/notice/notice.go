// Package notice holds the warning message shown to wallet users.
package notice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chris/nutstash-wallet/pkg/storage"
)

// StorageKey is the durable storage key the message lives under.
const StorageKey = "message"

// DefaultMessage is used when nothing has been stored yet.
const DefaultMessage = "Antes de utilizar nutstash, asegúrate de que entiendes los riesgos."

// Listener is called with the cell's value.
type Listener func(value string)

// Cell is an observable string mirrored to a KeyValueStore.
// A Cell without a store starts empty and never persists.
type Cell struct {
	mu    sync.Mutex
	kv    storage.KeyValueStore
	value string

	listeners map[int]Listener
	nextID    int
}

// New seeds a Cell from kv. A nil kv yields an empty, memory-only cell.
// The seeded value is written back to kv so the store always holds the current message.
func New(ctx context.Context, kv storage.KeyValueStore) (*Cell, error) {
	c := &Cell{kv: kv, listeners: map[int]Listener{}}
	if kv == nil {
		return c, nil
	}

	value, err := kv.GetValue(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		value = DefaultMessage
	case err != nil:
		return nil, fmt.Errorf("failed to read notice: %w", err)
	}
	c.value = value

	if err := kv.SetValue(ctx, StorageKey, value); err != nil {
		return nil, fmt.Errorf("failed to write notice: %w", err)
	}
	return c, nil
}

// Get returns the current value.
func (c *Cell) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value, persists it, and notifies listeners.
func (c *Cell) Set(ctx context.Context, value string) error {
	return c.Update(ctx, func(string) string { return value })
}

// Update applies fn to the current value under the cell's lock.
// If persisting fails the in-memory value is left unchanged.
func (c *Cell) Update(ctx context.Context, fn func(current string) string) error {
	c.mu.Lock()
	next := fn(c.value)
	if c.kv != nil {
		if err := c.kv.SetValue(ctx, StorageKey, next); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to write notice: %w", err)
		}
	}
	c.value = next
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return nil
}

// Subscribe calls fn with the current value right away and again after every change.
// The returned func removes the listener.
func (c *Cell) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	current := c.value
	c.mu.Unlock()

	fn(current)

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}
