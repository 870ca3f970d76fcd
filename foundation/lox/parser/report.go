// File: report.go
// Title: Diagnostic Reporting
// Description: The Reporter collaborator that the lexer and parser send
//              their diagnostics to, plus the standard implementations:
//              a collecting reporter, a fan-out and a logging adapter.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial reporter set

package parser

import (
	"fmt"
	"sync"

	mdwlog "github.com/msto63/lox/foundation/core/log"
)

// Reporter receives diagnostics. where is empty for lexical errors and
// " at end" or " at '<lexeme>'" for syntax errors.
type Reporter interface {
	Report(line int, where, message string)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(line int, where, message string)

// Report calls f
func (f ReporterFunc) Report(line int, where, message string) {
	f(line, where, message)
}

// Discard is a Reporter that drops everything
var Discard Reporter = ReporterFunc(func(int, string, string) {})

// DiagnosticKind distinguishes the pipeline stage that found a problem
type DiagnosticKind int

const (
	KindLexical DiagnosticKind = iota
	KindSyntax
)

// String returns the kind name
func (k DiagnosticKind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Line    int            `json:"line"`
	Where   string         `json:"where,omitempty"`
	Message string         `json:"message"`
}

// String renders the diagnostic as "[line N] Error<where>: <message>"
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Collector is a Reporter that keeps every diagnostic. It is safe for
// concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report records a diagnostic. An empty where marks a lexical error.
func (c *Collector) Report(line int, where, message string) {
	kind := KindSyntax
	if where == "" {
		kind = KindLexical
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Kind:    kind,
		Line:    line,
		Where:   where,
		Message: message,
	})
}

// Diagnostics returns a copy of the recorded diagnostics in report order
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Len returns the number of recorded diagnostics
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diagnostics)
}

// HasErrors reports whether anything was recorded
func (c *Collector) HasErrors() bool {
	return c.Len() > 0
}

// HasKind reports whether a diagnostic of the given kind was recorded
func (c *Collector) HasKind(kind DiagnosticKind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Tee returns a Reporter forwarding every diagnostic to all given
// reporters in order. Nil reporters are skipped.
func Tee(reporters ...Reporter) Reporter {
	targets := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			targets = append(targets, r)
		}
	}
	return ReporterFunc(func(line int, where, message string) {
		for _, r := range targets {
			r.Report(line, where, message)
		}
	})
}

// LogReporter returns a Reporter that logs each diagnostic at warn level
func LogReporter(logger *mdwlog.Logger) Reporter {
	return ReporterFunc(func(line int, where, message string) {
		d := Diagnostic{Line: line, Where: where, Message: message}
		kind := KindSyntax
		if where == "" {
			kind = KindLexical
		}
		logger.Warn(d.String(), mdwlog.Fields{
			"kind": kind.String(),
			"line": line,
		})
	})
}

func reporterOrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}
