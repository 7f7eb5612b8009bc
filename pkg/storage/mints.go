package storage

import (
	"context"

	"github.com/chris/nutstash-wallet/pkg/models"
)

// MintRegistryReader defines the interface for reading the mint registry.
type MintRegistryReader interface {
	// ListMints retrieves every mint in the registry.
	ListMints(ctx context.Context) ([]models.Mint, error)
}

// MintRegistryWriter defines the interface for writing the mint registry.
type MintRegistryWriter interface {
	// CreateMint adds a new mint. It fails with ErrMintAlreadyExists if the URL is taken.
	CreateMint(ctx context.Context, mint *models.Mint) (*models.Mint, error)

	// PutMints writes every given mint, replacing stored entries with the same URL.
	// Stored mints missing from the collection are left untouched.
	PutMints(ctx context.Context, mints []models.Mint) error
}

// MintRegistryStore combines the reader and writer interfaces.
type MintRegistryStore interface {
	MintRegistryReader
	MintRegistryWriter
}
