// Package registry owns the wallet's list of trusted mints.
//
// Within a process a Registry is the single writer for the collection. Every
// mutation re-reads the store, modifies a copy and persists it through a
// storage.MintRegistryStore under one mutex, then swaps the in-memory copy.
// The re-read picks up entries written by other processes sharing the store.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chris/nutstash-wallet/pkg/keyset"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// Listener receives a snapshot of the registry after every successful write.
type Listener func(mints []models.Mint)

// Registry is a mutex-guarded handle over the mint collection.
type Registry struct {
	mu     sync.Mutex
	store  storage.MintRegistryStore
	derive keyset.Deriver
	mints  []models.Mint

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// New creates an empty Registry. A nil deriver falls back to keyset.Derive.
func New(store storage.MintRegistryStore, derive keyset.Deriver) *Registry {
	if derive == nil {
		derive = keyset.Derive
	}
	return &Registry{
		store:     store,
		derive:    derive,
		listeners: map[int]Listener{},
	}
}

// Load replaces the in-memory collection with what the store holds.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reload(ctx)
}

// List reloads the collection from the store and returns a copy of it.
func (r *Registry) List(ctx context.Context) ([]models.Mint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reload(ctx); err != nil {
		return nil, err
	}
	return cloneAll(r.mints), nil
}

// reload must be called with r.mu held.
func (r *Registry) reload(ctx context.Context) error {
	mints, err := r.store.ListMints(ctx)
	if err != nil {
		return fmt.Errorf("failed to load mint registry: %w", err)
	}
	r.mints = cloneAll(mints)
	return nil
}

// Snapshot returns a deep copy of the current collection.
func (r *Registry) Snapshot() []models.Mint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.mints)
}

// Subscribe registers fn to be called after each write. The returned func removes it.
func (r *Registry) Subscribe(fn Listener) func() {
	r.listenersMu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.listenersMu.Unlock()

	return func() {
		r.listenersMu.Lock()
		delete(r.listeners, id)
		r.listenersMu.Unlock()
	}
}

// AddMint registers a new mint. The URL must not already be present.
func (r *Registry) AddMint(ctx context.Context, mint models.Mint) (models.Mint, error) {
	r.mu.Lock()
	if err := r.reload(ctx); err != nil {
		r.mu.Unlock()
		return models.Mint{}, err
	}
	if indexOf(r.mints, mint.MintURL) >= 0 {
		r.mu.Unlock()
		return models.Mint{}, fmt.Errorf("mint %s: %w", mint.MintURL, storage.ErrMintAlreadyExists)
	}

	created, err := r.store.CreateMint(ctx, &mint)
	if err != nil {
		r.mu.Unlock()
		return models.Mint{}, fmt.Errorf("failed to add mint: %w", err)
	}

	r.mints = append(cloneAll(r.mints), created.Clone())
	snapshot := cloneAll(r.mints)
	r.mu.Unlock()

	r.publish(snapshot)
	return created.Clone(), nil
}

// UpdateMintKeys rotates the keys of the registry entry whose URL matches mint.MintURL.
// The new keyset ID is prepended to the entry's history and the whole registry is persisted.
// If no entry matches, an error wrapping storage.ErrMintNotFound is returned and nothing is written.
func (r *Registry) UpdateMintKeys(ctx context.Context, mint models.Mint, keys models.MintKeys) (models.RotationResult, error) {
	r.mu.Lock()
	if err := r.reload(ctx); err != nil {
		r.mu.Unlock()
		return models.RotationResult{}, err
	}

	idx := indexOf(r.mints, mint.MintURL)
	if idx < 0 {
		r.mu.Unlock()
		return models.RotationResult{}, fmt.Errorf("mint %s: %w", mint.MintURL, storage.ErrMintNotFound)
	}

	keysetID, err := r.derive(keys)
	if err != nil {
		r.mu.Unlock()
		return models.RotationResult{}, fmt.Errorf("failed to derive keyset ID: %w", err)
	}

	updated := cloneAll(r.mints)
	entry := &updated[idx]
	entry.Keys = keys.Clone()
	entry.Keysets = append([]string{keysetID}, entry.Keysets...)
	entry.UpdatedAt = time.Now()

	if err := r.store.PutMints(ctx, updated); err != nil {
		r.mu.Unlock()
		return models.RotationResult{}, fmt.Errorf("failed to persist mint registry: %w", err)
	}

	r.mints = updated
	snapshot := cloneAll(updated)
	r.mu.Unlock()

	r.publish(snapshot)
	return models.RotationResult{MintURL: mint.MintURL, KeysetID: keysetID}, nil
}

// StaleMints returns the mints whose newest keyset ID does not match the ID derived
// from their current keys. Mints whose keys cannot be derived are included.
func (r *Registry) StaleMints() []models.Mint {
	var stale []models.Mint
	for _, m := range r.Snapshot() {
		id, err := r.derive(m.Keys)
		if err != nil || id != m.CurrentKeyset() {
			stale = append(stale, m)
		}
	}
	return stale
}

func (r *Registry) publish(snapshot []models.Mint) {
	r.listenersMu.Lock()
	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.listenersMu.Unlock()

	for _, l := range listeners {
		l(cloneAll(snapshot))
	}
}

// indexOf returns the position of the first mint with the given URL, or -1.
func indexOf(mints []models.Mint, mintURL string) int {
	for i, m := range mints {
		if m.MintURL == mintURL {
			return i
		}
	}
	return -1
}

func cloneAll(mints []models.Mint) []models.Mint {
	out := make([]models.Mint, len(mints))
	for i, m := range mints {
		out[i] = m.Clone()
	}
	return out
}
