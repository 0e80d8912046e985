// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync engine and
// the grocery server.
//
// The primary abstraction is [SyncAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSyncAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-grocery-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// SyncAdapter defines communication with the grocery server.
type SyncAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Synchronize sends one sync request and returns the server's view of
	// everything changed since req.LastSyncTimestamp. Returns [ErrUnauthorized]
	// (wrapped) on 401, [ErrEmptyResponse] or [ErrMalformedResponse] when a 2xx
	// body is unusable, and [ErrTransport] when no response arrived.
	Synchronize(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// RefreshToken exchanges a refresh token for a new access token. The
	// request is unauthenticated.
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenRefreshResponse, error)

	// SignIn authenticates with a user name and password.
	SignIn(ctx context.Context, req models.SignInRequest) (models.JwtResponse, error)
}
