package scheduler

import (
	"context"

	"github.com/chris/nutstash-wallet/pkg/models"
)

// Scheduler defines the interface for a component that queues key rotations for later processing.
type Scheduler interface {
	// ScheduleRotation enqueues a rotation request for asynchronous processing.
	ScheduleRotation(ctx context.Context, req *models.RotationRequest) error
}
