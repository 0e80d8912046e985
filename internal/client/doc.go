// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the grocery client runtime.
//
// It wires local storage, the sealed session, the sync services and the
// background workers into a single process lifecycle, and renders the
// terminal views the commands print.
package client
