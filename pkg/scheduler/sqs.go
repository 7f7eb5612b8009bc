package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/juju/clock"
	"github.com/juju/retry"
)

const (
	defaultSendAttempts = 3
	defaultSendDelay    = 200 * time.Millisecond
)

// ErrInvalidRotationRequest is returned for requests missing a mint URL or keys.
var ErrInvalidRotationRequest = errors.New("invalid rotation request")

// SQSAPI is the subset of the SQS client used by SQSScheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the Scheduler interface using AWS SQS.
// Failed sends are retried with exponential backoff.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string

	Attempts int
	Delay    time.Duration
	Clock    clock.Clock
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
		Attempts: defaultSendAttempts,
		Delay:    defaultSendDelay,
		Clock:    clock.WallClock,
	}
}

// Make sure we conform to the interface
var (
	_ Scheduler = (*SQSScheduler)(nil)
	_ SQSAPI    = (*sqs.Client)(nil)
)

// ScheduleRotation sends the rotation request to an SQS queue for later processing.
func (s *SQSScheduler) ScheduleRotation(ctx context.Context, req *models.RotationRequest) error {
	if req == nil || req.MintURL == "" || len(req.Keys) == 0 {
		return ErrInvalidRotationRequest
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal rotation request for SQS: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(string(body)),
	}
	err = retry.Call(retry.CallArgs{
		Func: func() error {
			_, err := s.Client.SendMessage(ctx, input)
			return err
		},
		IsFatalError: func(err error) bool {
			return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		NotifyFunc: func(err error, attempt int) {
			slog.Debug("SQS send failed", "mint_url", req.MintURL, "attempt", attempt, "error", err)
		},
		Attempts:    s.Attempts,
		Delay:       s.Delay,
		BackoffFunc: retry.DoubleDelay,
		Clock:       s.Clock,
		Stop:        ctx.Done(),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", retry.LastError(err))
	}

	return nil
}
