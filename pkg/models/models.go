package models

import (
	"time"
)

// MintKeys is a mint's current key bundle: denomination amount (as a decimal string)
// mapped to the hex-encoded public key for that amount.
type MintKeys map[string]string

// Clone returns a copy of the key bundle.
func (k MintKeys) Clone() MintKeys {
	if k == nil {
		return nil
	}
	out := make(MintKeys, len(k))
	for amount, pubKey := range k {
		out[amount] = pubKey
	}
	return out
}

// Mint represents the internal domain model for a trusted mint in the wallet's registry.
// It includes dynamodbav tags for marshalling.
type Mint struct {
	MintURL   string    `json:"mint_url" dynamodbav:"mint_url"`
	Keys      MintKeys  `json:"keys" dynamodbav:"keys"`
	Keysets   []string  `json:"keysets" dynamodbav:"keysets"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Clone returns a deep copy of the mint so callers can mutate it freely.
func (m Mint) Clone() Mint {
	out := m
	out.Keys = m.Keys.Clone()
	if m.Keysets != nil {
		out.Keysets = append([]string(nil), m.Keysets...)
	}
	return out
}

// CurrentKeyset returns the most recent keyset ID, or "" when the mint has none.
func (m Mint) CurrentKeyset() string {
	if len(m.Keysets) == 0 {
		return ""
	}
	return m.Keysets[0]
}

// RotationRequest is the message queued for asynchronous key rotation.
type RotationRequest struct {
	MintURL string   `json:"mint_url"`
	Keys    MintKeys `json:"keys"`
}

// RotationResult describes a successful key rotation.
type RotationResult struct {
	MintURL  string `json:"mint_url"`
	KeysetID string `json:"keyset_id"`
}

// Setting is a single record in the durable key-value settings table.
type Setting struct {
	Key       string    `dynamodbav:"key"`
	Value     string    `dynamodbav:"value"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}
