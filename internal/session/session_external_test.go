package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/mock"
	"github.com/MKhiriev/go-grocery-sync/internal/session"
	"github.com/MKhiriev/go-grocery-sync/models"
)

func TestSession_PersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewMockPersister(ctrl)
	errDisk := errors.New("read-only file system")

	store.EXPECT().Load(gomock.Any()).Return(session.State{}, session.ErrNoSession)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errDisk)

	sess, err := session.Load(ctx, store, logger.Nop())
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())

	err = sess.SignIn(ctx, "alice", models.TokenPair{AccessToken: "a", RefreshToken: "r"})
	assert.ErrorIs(t, err, errDisk)

	// the process keeps working with what it has
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "alice", sess.Username())
}

func TestSession_SetLastSyncSavesUTC(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewMockPersister(ctrl)

	local := time.Date(2026, 5, 4, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	gomock.InOrder(
		store.EXPECT().Load(gomock.Any()).Return(session.State{Username: "alice", AccessToken: "a"}, nil),
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, st session.State) error {
			assert.Equal(t, time.UTC, st.LastSync.Location())
			assert.True(t, st.LastSync.Equal(local))
			return nil
		}),
		store.EXPECT().Clear(gomock.Any()).Return(nil),
	)

	sess, err := session.Load(ctx, store, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, sess.SetLastSync(ctx, local))
	require.NoError(t, sess.Invalidate(ctx))
	assert.True(t, sess.LastSync().IsZero())
}

func TestFileStore_SealerIsUsed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sealer := mock.NewMockSealer(ctrl)
	path := filepath.Join(t.TempDir(), "nested", "session.sealed")

	var sealed []byte
	sealer.EXPECT().Seal(gomock.Any(), "pass").DoAndReturn(func(plain []byte, _ string) ([]byte, error) {
		sealed = append([]byte("sealed:"), plain...)
		return sealed, nil
	})
	sealer.EXPECT().Open(gomock.Any(), "pass").DoAndReturn(func(blob []byte, _ string) ([]byte, error) {
		assert.Equal(t, sealed, blob)
		return blob[len("sealed:"):], nil
	})

	fs := session.NewFileStore(path, "pass", sealer)
	require.NoError(t, fs.Save(ctx, session.State{Username: "bob", AccessToken: "t"}))

	state, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", state.Username)
	assert.Equal(t, "t", state.AccessToken)

	require.NoError(t, fs.Clear(ctx))
	_, err = fs.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestFileStore_SealFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sealer := mock.NewMockSealer(ctrl)
	errSeal := errors.New("entropy exhausted")
	sealer.EXPECT().Seal(gomock.Any(), gomock.Any()).Return(nil, errSeal)

	fs := session.NewFileStore(filepath.Join(t.TempDir(), "s"), "k", sealer)
	assert.ErrorIs(t, fs.Save(context.Background(), session.State{}), errSeal)
}
