package storage

import "errors"

// ErrMintNotFound is returned when no registry entry matches a mint URL.
var ErrMintNotFound = errors.New("mint not found")

// ErrMintAlreadyExists is returned when adding a mint whose URL is already registered.
var ErrMintAlreadyExists = errors.New("mint already exists")

// ErrKeyNotFound is returned by a KeyValueStore when the key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// ErrRegistryTooLarge is returned when a registry write exceeds what the backend can write atomically.
var ErrRegistryTooLarge = errors.New("registry too large to write atomically")
