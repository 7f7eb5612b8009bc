// Package keyset derives keyset identifiers from a mint's key bundle.
package keyset

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/multiformats/go-multihash"
)

// IDLength is the number of base64 characters kept from the digest.
const IDLength = 12

// ErrEmptyKeys is returned when a key bundle has no entries.
var ErrEmptyKeys = errors.New("key bundle is empty")

// Deriver maps a key bundle to its keyset identifier. Implementations must be
// deterministic and free of side effects.
type Deriver func(keys models.MintKeys) (string, error)

// Derive computes the keyset ID for a key bundle.
// Public keys are ordered by ascending amount, concatenated, hashed with SHA-256,
// and the first IDLength characters of the standard base64 encoding are returned.
func Derive(keys models.MintKeys) (string, error) {
	if len(keys) == 0 {
		return "", ErrEmptyKeys
	}

	type entry struct {
		amount uint64
		pubKey string
	}
	entries := make([]entry, 0, len(keys))
	for rawAmount, pubKey := range keys {
		amount, err := strconv.ParseUint(rawAmount, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid amount %q in key bundle: %w", rawAmount, err)
		}
		entries = append(entries, entry{amount: amount, pubKey: pubKey})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].amount < entries[j].amount
	})

	var concat strings.Builder
	for _, e := range entries {
		concat.WriteString(e.pubKey)
	}

	sum, err := multihash.Sum([]byte(concat.String()), multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("failed to hash key bundle: %w", err)
	}
	decoded, err := multihash.Decode(sum)
	if err != nil {
		return "", fmt.Errorf("failed to decode key bundle digest: %w", err)
	}

	return base64.StdEncoding.EncodeToString(decoded.Digest)[:IDLength], nil
}

// Make sure Derive satisfies the Deriver contract.
var _ Deriver = Derive
