// Package testutil provides an in-process grocery sync server for adapter
// and engine tests.
package testutil
