// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records received from the sync server before
// they reach the local store.
//
// A record failing validation is skipped by the merge step with a warning;
// an invalid response envelope fails the whole attempt as retryable.
package validators

import "context"

// Validator validates a value. When fields are given only those are
// checked, otherwise every rule for the value's type applies.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
