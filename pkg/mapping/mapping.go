package mapping

import (
	"github.com/chris/nutstash-wallet/pkg/api"
	"github.com/chris/nutstash-wallet/pkg/models"
)

// ToApiMint converts a domain Mint model to an API Mint model.
func ToApiMint(mint *models.Mint) *api.Mint {
	out := &api.Mint{
		MintUrl: mint.MintURL,
		Keys:    map[string]string(mint.Keys.Clone()),
		Keysets: append([]string{}, mint.Keysets...),
	}
	if out.Keys == nil {
		out.Keys = map[string]string{}
	}
	if !mint.CreatedAt.IsZero() {
		createdAt := mint.CreatedAt
		out.CreatedAt = &createdAt
	}
	if !mint.UpdatedAt.IsZero() {
		updatedAt := mint.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}

// ToApiMints converts a registry snapshot to API models.
func ToApiMints(mints []models.Mint) []*api.Mint {
	out := make([]*api.Mint, len(mints))
	for i := range mints {
		out[i] = ToApiMint(&mints[i])
	}
	return out
}

// ToDomainNewMint converts an API NewMint model to a domain Mint model.
func ToDomainNewMint(newMint *api.NewMint) models.Mint {
	mint := models.Mint{MintURL: newMint.MintUrl}
	if newMint.Keys != nil {
		mint.Keys = models.MintKeys(*newMint.Keys).Clone()
	}
	if newMint.Keysets != nil {
		mint.Keysets = append([]string{}, *newMint.Keysets...)
	}
	return mint
}

// ToDomainKeys converts an API KeyBundle to a domain key bundle.
func ToDomainKeys(bundle *api.KeyBundle) models.MintKeys {
	return models.MintKeys(bundle.Keys).Clone()
}

// ToApiRotationResult converts a domain RotationResult to its API model.
func ToApiRotationResult(result *models.RotationResult) *api.RotationResult {
	return &api.RotationResult{
		MintUrl:  result.MintURL,
		KeysetId: result.KeysetID,
	}
}
