// ============================================================================
// lox - Expression Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for the front end components
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the lox components
const (
	// Release version of the command line tool
	Release = "0.1.0"

	// Component versions
	Lexer  = "0.1.0"
	Parser = "0.1.0"
	Engine = "0.1.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/lox/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "engine":
		return Engine
	default:
		return Release
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("lox %s (commit %s, built %s, %s)", Release, Commit, BuildDate, runtime.Version())
}
