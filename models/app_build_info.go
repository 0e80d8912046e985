// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries linker-injected build metadata shown by the CLI.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills unset values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("version %s (built %s, commit %s)", b.Version, b.Date, b.Commit)
}
