// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/mock"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, tokens models.TokenPair) (*clientAuthService, *mock.MockSyncAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockSyncAdapter(ctrl)
	mockAdapter.EXPECT().SetToken(tokens.AccessToken)

	sess := newTestSession(t, tokens)
	return NewClientAuthService(sess, mockAdapter, logger.Nop()).(*clientAuthService), mockAdapter
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestClientAuthService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{})
	ctx := context.Background()

	mockAdapter.EXPECT().
		SignIn(ctx, models.SignInRequest{Username: "alice", Password: "secret"}).
		Return(models.JwtResponse{Token: "access", RefreshToken: "refresh", Type: "Bearer", Username: "alice"}, nil)

	require.NoError(t, svc.SignIn(ctx, "alice", "secret"))

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "alice", svc.Username())
	assert.Equal(t, "refresh", svc.session.RefreshToken())
}

func TestClientAuthService_SignIn_UsernameFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{})
	ctx := context.Background()

	token, err := utils.GenerateJWTToken("issuer", "bob", time.Hour, "key")
	require.NoError(t, err)

	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.JwtResponse{Token: token, RefreshToken: "r"}, nil)

	require.NoError(t, svc.SignIn(ctx, "BOB", "pw"))
	assert.Equal(t, "bob", svc.Username())

	claims, err := svc.TokenClaims()
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
	assert.False(t, claims.Expired(time.Now()))
}

func TestClientAuthService_SignIn_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, models.TokenPair{})

	err := svc.SignIn(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, svc.IsAuthenticated())
}

func TestClientAuthService_SignIn_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{})
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.JwtResponse{}, adapter.ErrUnauthorized)

	err := svc.SignIn(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, svc.IsAuthenticated())
}

// ── RefreshAccessToken ───────────────────────────────────────────────────────

func TestClientAuthService_RefreshAccessToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{AccessToken: "old", RefreshToken: "refresh"})
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().RefreshToken(ctx, "refresh").
			Return(models.TokenRefreshResponse{AccessToken: "new", TokenType: "Bearer"}, nil),
		mockAdapter.EXPECT().SetToken("new"),
	)

	require.NoError(t, svc.RefreshAccessToken(ctx))
	assert.Equal(t, "new", svc.session.AccessToken())
	// an empty refresh token in the response keeps the old one
	assert.Equal(t, "refresh", svc.session.RefreshToken())
}

func TestClientAuthService_RefreshAccessToken_NoRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, models.TokenPair{AccessToken: "old"})

	err := svc.RefreshAccessToken(context.Background())
	assert.ErrorIs(t, err, ErrRefreshTokenMissing)
}

func TestClientAuthService_RefreshAccessToken_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{AccessToken: "old", RefreshToken: "refresh"})
	ctx := context.Background()

	mockAdapter.EXPECT().RefreshToken(ctx, "refresh").Return(models.TokenRefreshResponse{}, adapter.ErrForbidden)

	err := svc.RefreshAccessToken(ctx)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Equal(t, "old", svc.session.AccessToken())
}

// ── Invalidate / Logout ──────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl, models.TokenPair{AccessToken: "a", RefreshToken: "r"})
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.Username())

	// второй выход ничего не делает
	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_TokenClaims_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, models.TokenPair{})

	_, err := svc.TokenClaims()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── authRetryGate ────────────────────────────────────────────────────────────

func TestAuthRetryGate_Do(t *testing.T) {
	errBoom := errors.New("boom")
	unauthorized := fmt.Errorf("%w: sync", adapter.ErrUnauthorized)

	tests := []struct {
		name       string
		results    []error
		setup      func(auth *mock.MockAuthenticator)
		wantCalls  int
		wantErrIs  error
		wantNilErr bool
	}{
		{
			name:       "success without refresh",
			results:    []error{nil},
			setup:      func(auth *mock.MockAuthenticator) {},
			wantCalls:  1,
			wantNilErr: true,
		},
		{
			name:      "other errors are not retried",
			results:   []error{adapter.ErrServiceUnavailable},
			setup:     func(auth *mock.MockAuthenticator) {},
			wantCalls: 1,
			wantErrIs: adapter.ErrServiceUnavailable,
		},
		{
			name:    "401 then refresh then success",
			results: []error{unauthorized, nil},
			setup: func(auth *mock.MockAuthenticator) {
				auth.EXPECT().RefreshAccessToken(gomock.Any()).Return(nil).Times(1)
			},
			wantCalls:  2,
			wantNilErr: true,
		},
		{
			name:    "second 401 is returned without another refresh",
			results: []error{unauthorized, unauthorized},
			setup: func(auth *mock.MockAuthenticator) {
				auth.EXPECT().RefreshAccessToken(gomock.Any()).Return(nil).Times(1)
			},
			wantCalls: 2,
			wantErrIs: adapter.ErrUnauthorized,
		},
		{
			name:    "retried call failing otherwise",
			results: []error{unauthorized, errBoom},
			setup: func(auth *mock.MockAuthenticator) {
				auth.EXPECT().RefreshAccessToken(gomock.Any()).Return(nil)
			},
			wantCalls: 2,
			wantErrIs: errBoom,
		},
		{
			name:    "refresh failure invalidates session",
			results: []error{unauthorized},
			setup: func(auth *mock.MockAuthenticator) {
				gomock.InOrder(
					auth.EXPECT().RefreshAccessToken(gomock.Any()).Return(adapter.ErrForbidden),
					auth.EXPECT().Invalidate(gomock.Any()).Return(nil),
				)
			},
			wantCalls: 1,
			wantErrIs: ErrSessionInvalidated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			gate := newAuthRetryGate(auth, logger.Nop())
			calls := 0
			err := gate.Do(context.Background(), func(context.Context) error {
				res := tt.results[calls]
				calls++
				return res
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantNilErr {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
		})
	}
}

func TestAuthRetryGate_Do_CancelledDuringRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthenticator(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	auth.EXPECT().RefreshAccessToken(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return context.Canceled
	})
	// Invalidate must not be called: the refresh never got an answer

	gate := newAuthRetryGate(auth, logger.Nop())
	err := gate.Do(ctx, func(context.Context) error { return adapter.ErrUnauthorized })

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrSessionInvalidated)
}
