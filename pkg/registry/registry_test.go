package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
	"github.com/chris/nutstash-wallet/pkg/storage/memory"
	"github.com/chris/nutstash-wallet/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	k1 = models.MintKeys{"1": "k1"}
	k2 = models.MintKeys{"1": "k2"}
)

// fakeDerive maps the pubkey of amount 1 to "id" + its suffix.
func fakeDerive(keys models.MintKeys) (string, error) {
	pub, ok := keys["1"]
	if !ok {
		return "", errors.New("no key for amount 1")
	}
	return "id" + pub[1:], nil
}

func newLoaded(t *testing.T, mints ...models.Mint) (*Registry, *memory.Store) {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.PutMints(context.Background(), mints))
	reg := New(store, fakeDerive)
	require.NoError(t, reg.Load(context.Background()))
	return reg, store
}

func TestUpdateMintKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates Matching Mint", func(t *testing.T) {
		reg, store := newLoaded(t, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

		result, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)

		require.NoError(t, err)
		assert.Equal(t, models.RotationResult{MintURL: "https://a", KeysetID: "id2"}, result)

		snapshot := reg.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, k2, snapshot[0].Keys)
		assert.Equal(t, []string{"id2", "id1"}, snapshot[0].Keysets)

		persisted, err := store.ListMints(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"id2", "id1"}, persisted[0].Keysets)
		assert.Equal(t, k2, persisted[0].Keys)
	})

	t.Run("Leaves Other Mints Alone", func(t *testing.T) {
		reg, _ := newLoaded(t,
			models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}},
			models.Mint{MintURL: "https://b", Keys: k1, Keysets: []string{"id1", "id0"}},
		)

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://b"}, k2)
		require.NoError(t, err)

		snapshot := reg.Snapshot()
		assert.Equal(t, []string{"id1"}, snapshot[0].Keysets)
		assert.Equal(t, k1, snapshot[0].Keys)
		assert.Equal(t, []string{"id2", "id1", "id0"}, snapshot[1].Keysets)
	})

	t.Run("Repeated Rotation Grows History", func(t *testing.T) {
		reg, _ := newLoaded(t, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)
		require.NoError(t, err)
		_, err = reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)
		require.NoError(t, err)

		assert.Equal(t, []string{"id2", "id2", "id1"}, reg.Snapshot()[0].Keysets)
	})

	t.Run("Missing Mint", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListMints", mock.Anything).Return([]models.Mint{}, nil)

		reg := New(mockStore, fakeDerive)
		require.NoError(t, reg.Load(ctx))

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://missing"}, k2)

		assert.ErrorIs(t, err, storage.ErrMintNotFound)
		assert.Empty(t, reg.Snapshot())
		mockStore.AssertNotCalled(t, "PutMints", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Derivation Fails", func(t *testing.T) {
		reg, _ := newLoaded(t, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, models.MintKeys{"2": "x"})

		assert.Error(t, err)
		assert.Equal(t, []string{"id1"}, reg.Snapshot()[0].Keysets)
	})

	t.Run("Reload Fails Writes Nothing", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListMints", mock.Anything).Return([]models.Mint{{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}}}, nil).Once()
		mockStore.On("ListMints", mock.Anything).Return(nil, errors.New("scan failed")).Once()

		reg := New(mockStore, fakeDerive)
		require.NoError(t, reg.Load(ctx))

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)

		assert.Error(t, err)
		assert.Equal(t, []string{"id1"}, reg.Snapshot()[0].Keysets)
		mockStore.AssertNotCalled(t, "PutMints", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Persist Fails Leaves Registry Unchanged", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListMints", mock.Anything).Return([]models.Mint{{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}}}, nil)
		mockStore.On("PutMints", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		reg := New(mockStore, fakeDerive)
		require.NoError(t, reg.Load(ctx))

		_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to persist mint registry")
		assert.Equal(t, []string{"id1"}, reg.Snapshot()[0].Keysets)
		assert.Equal(t, k1, reg.Snapshot()[0].Keys)
		mockStore.AssertExpectations(t)
	})

	t.Run("Concurrent Rotations Are Serialized", func(t *testing.T) {
		reg, _ := newLoaded(t, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Len(t, reg.Snapshot()[0].Keysets, 21)
	})
}

func TestAddMint(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reg, store := newLoaded(t)

		created, err := reg.AddMint(ctx, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

		require.NoError(t, err)
		assert.Equal(t, "https://a", created.MintURL)
		assert.Len(t, reg.Snapshot(), 1)
		persisted, err := store.ListMints(ctx)
		require.NoError(t, err)
		assert.Len(t, persisted, 1)
	})

	t.Run("Duplicate URL", func(t *testing.T) {
		reg, _ := newLoaded(t, models.Mint{MintURL: "https://a"})

		_, err := reg.AddMint(ctx, models.Mint{MintURL: "https://a"})

		assert.ErrorIs(t, err, storage.ErrMintAlreadyExists)
		assert.Len(t, reg.Snapshot(), 1)
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	reg, _ := newLoaded(t, models.Mint{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}})

	var got [][]models.Mint
	unsubscribe := reg.Subscribe(func(mints []models.Mint) {
		got = append(got, mints)
	})

	_, err := reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"id2", "id1"}, got[0][0].Keysets)

	unsubscribe()
	_, err = reg.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStaleMints(t *testing.T) {
	reg, _ := newLoaded(t,
		models.Mint{MintURL: "https://fresh", Keys: k1, Keysets: []string{"id1"}},
		models.Mint{MintURL: "https://stale", Keys: k2, Keysets: []string{"id1"}},
		models.Mint{MintURL: "https://empty", Keys: k1},
	)

	stale := reg.StaleMints()

	require.Len(t, stale, 2)
	assert.Equal(t, "https://stale", stale[0].MintURL)
	assert.Equal(t, "https://empty", stale[1].MintURL)
}

func TestSharedStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.PutMints(ctx, []models.Mint{{MintURL: "https://a", Keys: k1, Keysets: []string{"id1"}}}))

	server := New(store, fakeDerive)
	require.NoError(t, server.Load(ctx))

	worker := New(store, fakeDerive)
	require.NoError(t, worker.Load(ctx))
	_, err := worker.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, k2)
	require.NoError(t, err)
	_, err = worker.AddMint(ctx, models.Mint{MintURL: "https://b", Keys: k1, Keysets: []string{"id1"}})
	require.NoError(t, err)

	t.Run("Rotation Keeps Other Writers' Changes", func(t *testing.T) {
		_, err := server.UpdateMintKeys(ctx, models.Mint{MintURL: "https://a"}, models.MintKeys{"1": "k3"})
		require.NoError(t, err)

		stored, err := store.ListMints(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, []string{"id3", "id2", "id1"}, stored[0].Keysets)
		assert.Equal(t, "https://b", stored[1].MintURL)
	})

	t.Run("AddMint Sees Other Writers' Mints", func(t *testing.T) {
		_, err := server.AddMint(ctx, models.Mint{MintURL: "https://b"})
		assert.ErrorIs(t, err, storage.ErrMintAlreadyExists)
	})

	t.Run("List Reloads", func(t *testing.T) {
		_, err := worker.AddMint(ctx, models.Mint{MintURL: "https://c"})
		require.NoError(t, err)

		listed, err := server.List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "https://c", listed[2].MintURL)
	})
}
