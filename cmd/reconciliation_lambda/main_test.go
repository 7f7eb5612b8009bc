package main

import (
	"context"
	"errors"
	"testing"

	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/scheduler"
	"github.com/chris/nutstash-wallet/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScheduler struct {
	requests []*models.RotationRequest
	failFor  string
}

func (s *recordingScheduler) ScheduleRotation(_ context.Context, req *models.RotationRequest) error {
	if req.MintURL == s.failFor {
		return errors.New("throttled")
	}
	s.requests = append(s.requests, req)
	return nil
}

var _ scheduler.Scheduler = (*recordingScheduler)(nil)

func TestHandleRequest(t *testing.T) {
	ctx := context.Background()
	keys := models.MintKeys{"1": "02aa", "2": "03bb", "16": "04cc"}

	t.Run("Re-enqueues Stale Mints", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.PutMints(ctx, []models.Mint{
			{MintURL: "https://current", Keys: keys, Keysets: []string{"xPonJnGr5abC"}},
			{MintURL: "https://stale", Keys: keys, Keysets: []string{"old"}},
			{MintURL: "https://broken", Keysets: []string{"old"}},
		}))
		sched := &recordingScheduler{failFor: "https://broken"}

		err := newReconciler(store, sched).HandleRequest(ctx)
		require.NoError(t, err)

		require.Len(t, sched.requests, 1)
		assert.Equal(t, "https://stale", sched.requests[0].MintURL)
		assert.Equal(t, keys, sched.requests[0].Keys)
	})

	t.Run("Nothing To Do", func(t *testing.T) {
		sched := &recordingScheduler{}

		err := newReconciler(memory.New(), sched).HandleRequest(ctx)
		require.NoError(t, err)
		assert.Empty(t, sched.requests)
	})
}
