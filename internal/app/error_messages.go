// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings and exit codes shared
// by the grocery client commands.
//
// Keeping them in one place ensures consistent wording across commands.
package app

import "github.com/MKhiriev/go-grocery-sync/models"

const (
	// MsgInvalidDataProvided is printed when command arguments fail local
	// validation (e.g. a blank name or a negative quantity).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is printed when the server rejects the
	// username/password pair.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgNotSignedIn is printed by commands that talk to the server when no
	// session is stored.
	MsgNotSignedIn = "not signed in, run `grocery login` first"

	// MsgSignedIn is printed after a successful login.
	MsgSignedIn = "signed in as %s"

	// MsgSignedOut is printed after logout.
	MsgSignedOut = "signed out"

	// MsgSessionExpired is printed when the session could not be refreshed
	// and was dropped. The user has to sign in again.
	MsgSessionExpired = "session expired, please sign in again"

	// MsgSyncWillRetry is printed when a sync failed for a reason that may go
	// away on its own (network, server, malformed response).
	MsgSyncWillRetry = "sync failed, local changes are kept and will be sent next time"

	// MsgDataNotFound is printed when a list, item or store id does not
	// exist locally.
	MsgDataNotFound = "data not found"

	// MsgBackgroundSyncStarted is printed by the run command.
	MsgBackgroundSyncStarted = "background sync running, press Ctrl+C to stop"
)

// Exit codes of the sync command.
const (
	ExitSuccess   = 0
	ExitRetryable = 1
	ExitFatal     = 2
)

// ExitCode maps a sync outcome to the process exit code.
func ExitCode(outcome models.SyncOutcome) int {
	switch outcome {
	case models.OutcomeSuccess:
		return ExitSuccess
	case models.OutcomeFatal:
		return ExitFatal
	default:
		return ExitRetryable
	}
}
