// File: level.go
// Title: Log Level Definitions
// Description: Severity levels used to filter log output, plus parsing of the
//              level names accepted in configuration files and CLI flags.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial level set (trace to fatal)

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level (token-by-token output)
	LevelTrace Level = iota

	// LevelDebug reports pipeline stages and their timings
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn is used for reported lexical and syntax diagnostics
	LevelWarn

	// LevelError represents failures of the tool itself (I/O, storage)
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

// levelNames holds, per level, the canonical name, the three letter tag
// and further spellings accepted by ParseLevel.
var levelNames = [...]struct {
	name    string
	short   string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", nil},
	LevelFatal: {"fatal", "FTL", nil},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three letter tag used by the text formats
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its tag or an alias, ignoring case.
// Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	input := strings.ToLower(strings.TrimSpace(level))
	for l, names := range levelNames {
		if input == names.name || input == strings.ToLower(names.short) {
			return Level(l), nil
		}
		for _, alias := range names.aliases {
			if input == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
