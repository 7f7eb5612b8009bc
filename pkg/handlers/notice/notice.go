package notice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/nutstash-wallet/pkg/api"
)

// NoticeService reads and replaces the persisted notice.
type NoticeService interface {
	Get() string
	Set(ctx context.Context, value string) error
}

// NoticeHandler holds the dependencies for notice handlers.
type NoticeHandler struct {
	Notice NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(notice NoticeService) *NoticeHandler {
	return &NoticeHandler{Notice: notice}
}

// GetNotice returns the current notice.
func (h *NoticeHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.Notice{Message: h.Notice.Get()}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// UpdateNotice replaces the notice.
func (h *NoticeHandler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	var body api.Notice
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Notice.Set(r.Context(), body.Message); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update notice: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.Notice{Message: body.Message}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
