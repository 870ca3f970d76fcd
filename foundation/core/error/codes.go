// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used across the toolchain and their mapping to
//              categories and to the sysexits-style process exit codes the
//              CLI returns.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeUsage        Code = "USAGE"

	// Source text problems found by the front end
	CodeLexical Code = "LOX_LEXICAL"
	CodeSyntax  Code = "LOX_SYNTAX"

	// Environment
	CodeIO            Code = "IO_ERROR"
	CodeStorage       Code = "STORAGE_ERROR"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Exit codes, following BSD sysexits.h
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitIOErr    = 74
	ExitConfig   = 78
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeUsage,
		CodeLexical, CodeSyntax,
		CodeIO, CodeStorage, CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "source"
	case CodeIO, CodeStorage:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeUsage, CodeNotFound:
		return "input"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeUsage:
		return ExitUsage
	case CodeLexical, CodeSyntax, CodeInvalidInput:
		return ExitDataErr
	case CodeNotFound:
		return ExitNoInput
	case CodeIO, CodeStorage:
		return ExitIOErr
	case CodeConfigError, CodeInvalidConfig:
		return ExitConfig
	default:
		return ExitSoftware
	}
}
