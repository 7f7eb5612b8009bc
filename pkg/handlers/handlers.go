package handlers

import (
	"github.com/chris/nutstash-wallet/pkg/api"
	"github.com/chris/nutstash-wallet/pkg/handlers/mints"
	"github.com/chris/nutstash-wallet/pkg/handlers/notice"
	"github.com/chris/nutstash-wallet/pkg/scheduler"
)

// ApiHandler implements the generated server interface.
// It composes the per-resource handlers.
type ApiHandler struct {
	*mints.MintsHandler
	*notice.NoticeHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(mintSvc mints.MintService, rotator mints.KeyRotator, sched scheduler.Scheduler, noticeSvc notice.NoticeService) *ApiHandler {
	return &ApiHandler{
		MintsHandler:  mints.NewMintsHandler(mintSvc, rotator, sched),
		NoticeHandler: notice.NewNoticeHandler(noticeSvc),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
