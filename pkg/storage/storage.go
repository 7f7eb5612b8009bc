package storage

// Storage defines the root interface for the wallet's durable state.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (MintRegistryStore, KeyValueStore, etc.) instead of this one.
type Storage interface {
	MintRegistryStore
	KeyValueStore
}
