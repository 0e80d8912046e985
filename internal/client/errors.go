package client

import "errors"

// ErrNotSignedIn is returned by commands that need a session when none is
// stored.
var ErrNotSignedIn = errors.New("not signed in")
