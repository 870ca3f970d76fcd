// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification of errors, used to choose the log
//              level an error is reported at.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input that the user can fix
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed run of the pipeline
	SeverityMedium

	// SeverityHigh indicates a failure of the environment (files, storage)
	SeverityHigh

	// SeverityCritical indicates a bug in the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeStorage, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeUsage, CodeNotFound, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
