package mints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/nutstash-wallet/pkg/api"
	"github.com/chris/nutstash-wallet/pkg/keyset"
	"github.com/chris/nutstash-wallet/pkg/mapping"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/scheduler"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// MintService reads and extends the mint registry.
type MintService interface {
	List(ctx context.Context) ([]models.Mint, error)
	AddMint(ctx context.Context, mint models.Mint) (models.Mint, error)
}

// KeyRotator applies a key rotation to a registered mint.
type KeyRotator interface {
	UpdateMintKeys(ctx context.Context, mint models.Mint, keys models.MintKeys) (models.RotationResult, error)
}

// MintsHandler holds the dependencies for mint-related handlers.
type MintsHandler struct {
	Mints     MintService
	Rotator   KeyRotator
	Scheduler scheduler.Scheduler
}

// NewMintsHandler creates a new MintsHandler. The scheduler may be nil, in which case
// asynchronous rotation is unavailable.
func NewMintsHandler(mints MintService, rotator KeyRotator, sched scheduler.Scheduler) *MintsHandler {
	return &MintsHandler{Mints: mints, Rotator: rotator, Scheduler: sched}
}

// ListMints handles the logic for retrieving the mint registry.
func (h *MintsHandler) ListMints(w http.ResponseWriter, r *http.Request) {
	mints, err := h.Mints.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list mints: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiMints(mints))
}

// CreateMint handles the logic for registering a new mint.
func (h *MintsHandler) CreateMint(w http.ResponseWriter, r *http.Request) {
	var newMint api.NewMint
	if err := json.NewDecoder(r.Body).Decode(&newMint); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newMint.MintUrl == "" {
		http.Error(w, "mint_url is required", http.StatusBadRequest)
		return
	}

	created, err := h.Mints.AddMint(r.Context(), mapping.ToDomainNewMint(&newMint))
	if err != nil {
		if errors.Is(err, storage.ErrMintAlreadyExists) {
			http.Error(w, "Mint already registered", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create mint: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiMint(&created))
}

// UpdateMintKeys handles a synchronous key rotation for the mint in params.
func (h *MintsHandler) UpdateMintKeys(w http.ResponseWriter, r *http.Request, params api.UpdateMintKeysParams) {
	keys, ok := decodeKeyBundle(w, r)
	if !ok {
		return
	}

	result, err := h.Rotator.UpdateMintKeys(r.Context(), models.Mint{MintURL: params.MintUrl}, keys)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrMintNotFound):
			http.Error(w, fmt.Sprintf("Mint %s not found", params.MintUrl), http.StatusNotFound)
		case errors.Is(err, keyset.ErrEmptyKeys):
			http.Error(w, fmt.Sprintf("Invalid key bundle: %v", err), http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to update mint keys: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiRotationResult(&result))
}

// ScheduleMintKeyRotation queues a key rotation for asynchronous processing.
func (h *MintsHandler) ScheduleMintKeyRotation(w http.ResponseWriter, r *http.Request, params api.ScheduleMintKeyRotationParams) {
	if h.Scheduler == nil {
		http.Error(w, "Asynchronous rotation is not configured", http.StatusServiceUnavailable)
		return
	}

	keys, ok := decodeKeyBundle(w, r)
	if !ok {
		return
	}

	req := &models.RotationRequest{MintURL: params.MintUrl, Keys: keys}
	if err := h.Scheduler.ScheduleRotation(r.Context(), req); err != nil {
		if errors.Is(err, scheduler.ErrInvalidRotationRequest) {
			http.Error(w, fmt.Sprintf("Invalid rotation request: %v", err), http.StatusBadRequest)
		} else {
			http.Error(w, fmt.Sprintf("Failed to schedule rotation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func decodeKeyBundle(w http.ResponseWriter, r *http.Request) (models.MintKeys, bool) {
	var bundle api.KeyBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if len(bundle.Keys) == 0 {
		http.Error(w, "keys must not be empty", http.StatusBadRequest)
		return nil, false
	}
	return mapping.ToDomainKeys(&bundle), true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
