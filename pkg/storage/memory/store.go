// Package memory provides an in-process Storage implementation for local
// development and tests. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// Store keeps the mint registry, settings, and websocket connections in maps.
type Store struct {
	mu          sync.RWMutex
	mints       []models.Mint
	settings    map[string]string
	connections map[string]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		settings:    map[string]string{},
		connections: map[string]struct{}{},
	}
}

// Make sure we conform to the interfaces
var (
	_ storage.Storage          = (*Store)(nil)
	_ storage.WebSocketManager = (*Store)(nil)
)

// ListMints returns a copy of the registry in insertion order.
func (s *Store) ListMints(_ context.Context) ([]models.Mint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMints(s.mints), nil
}

// CreateMint appends a mint unless its URL is already registered.
func (s *Store) CreateMint(_ context.Context, mint *models.Mint) (*models.Mint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.mints {
		if m.MintURL == mint.MintURL {
			return nil, fmt.Errorf("mint %s: %w", mint.MintURL, storage.ErrMintAlreadyExists)
		}
	}
	if mint.CreatedAt.IsZero() {
		mint.CreatedAt = time.Now()
	}
	s.mints = append(s.mints, mint.Clone())
	return mint, nil
}

// PutMints upserts the given mints by URL. New URLs are appended.
func (s *Store) PutMints(_ context.Context, mints []models.Mint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range mints {
		replaced := false
		for i := range s.mints {
			if s.mints[i].MintURL == m.MintURL {
				s.mints[i] = m.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			s.mints = append(s.mints, m.Clone())
		}
	}
	return nil
}

// GetValue returns the setting stored under key.
func (s *Store) GetValue(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	value, ok := s.settings[key]
	s.mu.RUnlock()
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return value, nil
}

// SetValue stores value under key.
func (s *Store) SetValue(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.settings[key] = value
	s.mu.Unlock()
	return nil
}

// AddConnection registers a websocket client.
func (s *Store) AddConnection(_ context.Context, connectionID string) error {
	s.mu.Lock()
	s.connections[connectionID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// RemoveConnection forgets a websocket client.
func (s *Store) RemoveConnection(_ context.Context, connectionID string) error {
	s.mu.Lock()
	delete(s.connections, connectionID)
	s.mu.Unlock()
	return nil
}

// GetAllConnections lists registered websocket clients in sorted order.
func (s *Store) GetAllConnections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.connections))
	for id := range s.connections {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids, nil
}

func cloneMints(mints []models.Mint) []models.Mint {
	if mints == nil {
		return nil
	}
	out := make([]models.Mint, len(mints))
	for i, m := range mints {
		out[i] = m.Clone()
	}
	return out
}
