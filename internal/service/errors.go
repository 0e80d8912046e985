package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotAuthenticated means there is no session; nothing was sent.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionInvalidated means the token refresh failed and the user was
	// signed out.
	ErrSessionInvalidated  = errors.New("session invalidated")
	ErrRefreshTokenMissing = errors.New("no refresh token in session")

	ErrSyncInProgress = errors.New("sync already in progress")
	ErrSyncPanicked   = errors.New("sync panicked")
)
