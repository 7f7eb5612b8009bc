// Package actions contains the wallet operations triggered by UI events.
// Each action performs the state change and decides what the user is told.
package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/notify"
)

// User-facing texts for key rotation.
const (
	RotationFailedTitle    = "Error"
	RotationFailedBody     = "las claves de esta ceca han cambiado, pero no se han podido actualizar en la billetera"
	RotationSucceededTitle = "Las llaves de este mint han girado"
	rotationSucceededBody  = "el nuevo ID del juego de llaves es: "
)

// ErrCouldNotUpdateMintKeys is returned when a key rotation could not be applied.
var ErrCouldNotUpdateMintKeys = errors.New("could not update mint keys")

// MintKeyUpdater rotates a mint's keys in the registry.
type MintKeyUpdater interface {
	UpdateMintKeys(ctx context.Context, mint models.Mint, keys models.MintKeys) (models.RotationResult, error)
}

// WalletActions wires registry mutations to user notifications.
type WalletActions struct {
	Mints    MintKeyUpdater
	Notifier notify.Notifier
}

// New creates WalletActions. A nil notifier discards notifications.
func New(mints MintKeyUpdater, notifier notify.Notifier) *WalletActions {
	if notifier == nil {
		notifier = notify.NoOp{}
	}
	return &WalletActions{Mints: mints, Notifier: notifier}
}

// RotationSucceededBody returns the success notification text for a keyset ID.
func RotationSucceededBody(keysetID string) string {
	return rotationSucceededBody + keysetID
}

// UpdateMintKeys replaces the keys of a registered mint and records the new keyset ID.
// On failure the user is notified first, then an error wrapping ErrCouldNotUpdateMintKeys
// and the underlying cause is returned. The caller should stop whatever it was doing.
func (a *WalletActions) UpdateMintKeys(ctx context.Context, mint models.Mint, keys models.MintKeys) (models.RotationResult, error) {
	result, err := a.Mints.UpdateMintKeys(ctx, mint, keys)
	if err != nil {
		a.Notifier.Notify(ctx, notify.SeverityError, RotationFailedBody, RotationFailedTitle)
		return models.RotationResult{}, fmt.Errorf("%w: %w", ErrCouldNotUpdateMintKeys, err)
	}

	a.Notifier.Notify(ctx, notify.SeverityInfo, RotationSucceededBody(result.KeysetID), RotationSucceededTitle)
	return result, nil
}
