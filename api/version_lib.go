//go:build !autogen

// Package api holds build-time version information.
package api

// Default build-time variable for library-import.
// This file is overridden on build with build-time information.
const (
	Version   string = "library-import"
	GitCommit string = "library-import"
	BuildTime string = "library-import"
)
