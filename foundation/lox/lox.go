// File: lox.go
// Title: Lox Front End Engine
// Description: High-level API that runs the scan and parse stages on a
//              piece of source text and returns tokens, tree and
//              diagnostics of the run in one Result.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

// Package lox ties the lexer and parser together into a single run.
package lox

import (
	"time"

	"github.com/google/uuid"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/parser"
	"github.com/msto63/lox/foundation/lox/token"
)

// DefaultMaxSourceLength is the source size limit used when none is set
const DefaultMaxSourceLength = 1 << 20

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// Reporter additionally receives every diagnostic as it is found
	Reporter parser.Reporter

	// MaxSourceLength limits the input size in bytes (default: 1 MiB)
	MaxSourceLength int
}

// Result holds everything produced by one run
type Result struct {
	// RunID identifies the run in logs and history
	RunID string

	Source string
	Tokens []token.Token

	// Expr is the parsed tree; nil when any diagnostic was reported
	Expr ast.Expr

	// Diagnostics in the order they were reported
	Diagnostics []parser.Diagnostic

	ScanDuration  time.Duration
	ParseDuration time.Duration
}

// Failed reports whether the run produced diagnostics
func (r *Result) Failed() bool {
	return len(r.Diagnostics) > 0
}

// Printed returns the tree in parenthesized form, or "" without a tree
func (r *Result) Printed() string {
	return ast.Print(r.Expr)
}

// Engine runs the front end stages
type Engine struct {
	logger   *mdwlog.Logger
	reporter parser.Reporter
	options  Options
}

// NewEngine creates an engine. Zero option fields take their defaults.
func NewEngine(opts ...Options) *Engine {
	options := Options{MaxSourceLength: DefaultMaxSourceLength}
	if len(opts) > 0 {
		o := opts[0]
		options.Logger = o.Logger
		options.Reporter = o.Reporter
		if o.MaxSourceLength > 0 {
			options.MaxSourceLength = o.MaxSourceLength
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return &Engine{
		logger:   logger.WithField("component", "lox-engine"),
		reporter: options.Reporter,
		options:  options,
	}
}

// Run scans and parses source. The parser runs even after lexical errors
// so that syntax errors of the same input are reported in the same pass.
// A non-nil Result is returned whenever the input was processed; err is
// then a LOX_LEXICAL or LOX_SYNTAX coded error if diagnostics were found.
func (e *Engine) Run(source string) (*Result, error) {
	r, err := e.begin(source, "lox.Run")
	if err != nil {
		return nil, err
	}
	result := r.result

	start := time.Now()
	result.Tokens = parser.NewLexer(r.opts).Scan(source)
	result.ScanDuration = time.Since(start)

	start = time.Now()
	expr, parseErr := parser.NewParser(r.opts).Parse(result.Tokens)
	result.ParseDuration = time.Since(start)

	result.Diagnostics = r.collector.Diagnostics()
	if !result.Failed() {
		result.Expr = expr
	}

	fields := mdwlog.Fields{
		"tokens":      len(result.Tokens),
		"diagnostics": len(result.Diagnostics),
		"scan_ms":     float64(result.ScanDuration.Microseconds()) / 1000,
		"parse_ms":    float64(result.ParseDuration.Microseconds()) / 1000,
	}
	if result.Expr != nil {
		fields = fields.Merge(ast.Measure(result.Expr).Fields())
	}

	switch {
	case r.collector.HasKind(parser.KindLexical):
		err = r.lexicalError()
	case parseErr != nil:
		err = parseErr
	}

	if err != nil {
		fields["error"] = err.Error()
		r.opts.Logger.Debug("run failed", fields)
		return result, err
	}
	r.opts.Logger.Debug("run completed", fields)
	return result, nil
}

// Tokens runs only the scan stage
func (e *Engine) Tokens(source string) (*Result, error) {
	r, err := e.begin(source, "lox.Tokens")
	if err != nil {
		return nil, err
	}
	result := r.result

	start := time.Now()
	result.Tokens = parser.NewLexer(r.opts).Scan(source)
	result.ScanDuration = time.Since(start)
	result.Diagnostics = r.collector.Diagnostics()

	if result.Failed() {
		return result, r.lexicalError()
	}
	return result, nil
}

// run is the state of a single Run or Tokens call. Every call gets its own
// collector, so an Engine may serve concurrent calls.
type run struct {
	operation string
	result    *Result
	collector *parser.Collector
	opts      parser.Options
}

func (e *Engine) begin(source, operation string) (*run, error) {
	if len(source) > e.options.MaxSourceLength {
		return nil, loxerror.New("source exceeds maximum length").
			WithCode(loxerror.CodeInvalidInput).
			WithOperation(operation).
			WithDetail("length", len(source)).
			WithDetail("max_length", e.options.MaxSourceLength)
	}

	runID := uuid.New().String()
	collector := parser.NewCollector()

	return &run{
		operation: operation,
		result:    &Result{RunID: runID, Source: source},
		collector: collector,
		opts: parser.Options{
			Reporter: parser.Tee(collector, e.reporter),
			Logger:   e.logger.WithCorrelationID(runID),
		},
	}, nil
}

func (r *run) lexicalError() error {
	return loxerror.New("source contains lexical errors").
		WithCode(loxerror.CodeLexical).
		WithOperation(r.operation).
		WithDetail("diagnostics", r.collector.Len())
}
