package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/crypto"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1", TokenType: "Bearer"}

// ── Session ───────────────────────────────────────────────────────────────────

func TestLoad_EmptyStore(t *testing.T) {
	s, err := Load(context.Background(), NewMemoryStore(), logger.Nop())
	require.NoError(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Username())
	assert.True(t, s.LastSync().IsZero())
}

func TestSession_SignInPersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SignIn(ctx, "alice", testTokens))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice", s.Username())
	assert.Equal(t, "access-1", s.AccessToken())
	assert.Equal(t, "refresh-1", s.RefreshToken())

	restored, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), restored.Snapshot())
}

func TestSession_SetTokensKeepsRefreshWhenEmpty(t *testing.T) {
	ctx := context.Background()
	s, err := Load(ctx, NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SignIn(ctx, "alice", testTokens))

	require.NoError(t, s.SetTokens(ctx, models.TokenPair{AccessToken: "access-2"}))

	assert.Equal(t, "access-2", s.AccessToken())
	assert.Equal(t, "refresh-1", s.RefreshToken())
	assert.Equal(t, "Bearer", s.Snapshot().TokenType)
}

func TestSession_SignInOtherUserResetsWatermark(t *testing.T) {
	ctx := context.Background()
	s, err := Load(ctx, NewMemoryStore(), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SignIn(ctx, "alice", testTokens))
	require.NoError(t, s.SetLastSync(ctx, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, s.SignIn(ctx, "alice", testTokens))
	assert.False(t, s.LastSync().IsZero(), "same user keeps the watermark")

	require.NoError(t, s.SignIn(ctx, "bob", testTokens))
	assert.True(t, s.LastSync().IsZero(), "another user starts from scratch")
}

func TestSession_Invalidate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SignIn(ctx, "alice", testTokens))

	require.NoError(t, s.Invalidate(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.RefreshToken())
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

// ── FileStore ─────────────────────────────────────────────────────────────────

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.sealed")
	fs := NewFileStore(path, "passphrase", crypto.NewSealer())

	_, err := fs.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	want := State{
		Username:     "alice",
		AccessToken:  "a",
		RefreshToken: "r",
		TokenType:    "Bearer",
		LastSync:     time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
	}
	require.NoError(t, fs.Save(ctx, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice")

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.True(t, want.LastSync.Equal(got.LastSync))

	require.NoError(t, fs.Clear(ctx))
	require.NoError(t, fs.Clear(ctx), "clearing twice is fine")
	_, err = fs.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_WrongKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.sealed")

	require.NoError(t, NewFileStore(path, "right", crypto.NewSealer()).Save(ctx, State{Username: "alice"}))

	_, err := NewFileStore(path, "wrong", crypto.NewSealer()).Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestLoad_PropagatesStoreError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.sealed")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := Load(context.Background(), NewFileStore(path, "k", crypto.NewSealer()), logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrSealedBlobCorrupted)
}
