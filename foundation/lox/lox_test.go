// File: lox_test.go
// Title: Lox Front End Engine Tests
// Description: Tests for complete runs through the engine, covering the
//              success path, lexical and syntax failures and input limits.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine tests

package lox

import (
	"strings"
	"testing"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/parser"
	"github.com/msto63/lox/foundation/lox/token"
)

func newTestEngine(opts ...Options) *Engine {
	o := Options{}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Logger == nil {
		o.Logger = mdwlog.NewNop()
	}
	return NewEngine(o)
}

func TestEngineRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", "123", "123"},
		{"fraction", "0.5", "0.5"},
		{"string", `"hi"`, "hi"},
		{"string keeps backslashes", `"a\"b" == "c\nd"`, `(== a\"b c\nd)`},
		{"keywords", "true == !nil", "(== true (! nil))"},
		{"precedence", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"left associative", "1 - 2 - 3", "(- (- 1 2) 3)"},
		{"grouping", "-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"comparison chain", "1 < 2 == 3 >= 4", "(== (< 1 2) (>= 3 4))"},
		{"trailing tokens ignored", "1 2", "1"},
		{"multi line", "1 +\n// comment\n2", "(+ 1 2)"},
	}

	engine := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Run(tt.input)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.input, err)
			}
			if result.Failed() {
				t.Fatalf("Run(%q) diagnostics = %v", tt.input, result.Diagnostics)
			}
			if got := result.Printed(); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if result.Source != tt.input {
				t.Errorf("Source = %q, want %q", result.Source, tt.input)
			}
			if last := result.Tokens[len(result.Tokens)-1]; last.Type != token.EOF {
				t.Errorf("last token = %v, want EOF", last)
			}
		})
	}
}

func TestEngineRunLexicalError(t *testing.T) {
	result, err := newTestEngine().Run("1 + @")
	if err == nil {
		t.Fatal("expected error")
	}
	if !loxerror.HasCode(err, loxerror.CodeLexical) {
		t.Errorf("error code = %v, want %v", loxerror.GetCode(err), loxerror.CodeLexical)
	}
	if result == nil {
		t.Fatal("result should be returned alongside the error")
	}
	if result.Expr != nil {
		t.Errorf("Expr = %v, want nil", result.Expr)
	}
	if result.Printed() != "" {
		t.Errorf("Printed() = %q, want empty", result.Printed())
	}

	// The parser still runs, so the missing operand is reported too
	var kinds []parser.DiagnosticKind
	for _, d := range result.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	if len(kinds) != 2 || kinds[0] != parser.KindLexical || kinds[1] != parser.KindSyntax {
		t.Errorf("diagnostic kinds = %v, want [lexical syntax]", kinds)
	}
}

func TestEngineRunSyntaxError(t *testing.T) {
	result, err := newTestEngine().Run("(1 + 2")
	if err == nil {
		t.Fatal("expected error")
	}
	if !loxerror.HasCode(err, loxerror.CodeSyntax) {
		t.Errorf("error code = %v, want %v", loxerror.GetCode(err), loxerror.CodeSyntax)
	}
	if result == nil || result.Expr != nil {
		t.Fatalf("result = %+v, want a result without tree", result)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want one", result.Diagnostics)
	}
	want := "[line 1] Error at end: Expected ')' after expression."
	if got := result.Diagnostics[0].String(); got != want {
		t.Errorf("diagnostic = %q, want %q", got, want)
	}
}

func TestEngineMaxSourceLength(t *testing.T) {
	engine := newTestEngine(Options{MaxSourceLength: 8})

	result, err := engine.Run(strings.Repeat("1", 9))
	if err == nil {
		t.Fatal("expected error for oversized source")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if !loxerror.HasCode(err, loxerror.CodeInvalidInput) {
		t.Errorf("error code = %v, want %v", loxerror.GetCode(err), loxerror.CodeInvalidInput)
	}

	if _, err := engine.Run(strings.Repeat("1", 8)); err != nil {
		t.Errorf("source at the limit failed: %v", err)
	}
}

func TestEngineReporter(t *testing.T) {
	c := parser.NewCollector()
	engine := newTestEngine(Options{Reporter: c})

	if _, err := engine.Run("1 +"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := engine.Run("@"); err == nil {
		t.Fatal("expected error")
	}

	// Diagnostics of both runs reach the caller's reporter
	if c.Len() != 3 {
		t.Fatalf("reporter got %d diagnostics, want 3: %v", c.Len(), c.Diagnostics())
	}
}

func TestEngineRunIsolation(t *testing.T) {
	engine := newTestEngine()

	first, _ := engine.Run("@")
	second, err := engine.Run("1")
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}
	if len(second.Diagnostics) != 0 {
		t.Errorf("diagnostics leaked into second run: %v", second.Diagnostics)
	}
	if first.RunID == "" || second.RunID == "" || first.RunID == second.RunID {
		t.Errorf("run IDs = %q, %q, want distinct non-empty values", first.RunID, second.RunID)
	}
}

func TestEngineTokens(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Tokens("(1)")
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	if len(result.Tokens) != 4 {
		t.Fatalf("tokens = %v, want 4", result.Tokens)
	}
	if result.Expr != nil {
		t.Error("Tokens() should not parse")
	}

	// An incomplete expression is not an error when only scanning
	if _, err := engine.Tokens("1 +"); err != nil {
		t.Errorf("Tokens(\"1 +\") error = %v", err)
	}

	result, err = engine.Tokens(`"open`)
	if !loxerror.HasCode(err, loxerror.CodeLexical) {
		t.Errorf("error = %v, want LOX_LEXICAL", err)
	}
	if result == nil || len(result.Diagnostics) != 1 {
		t.Errorf("result = %+v, want one diagnostic", result)
	}
}

func TestEngineDefaults(t *testing.T) {
	engine := NewEngine()
	if engine.options.MaxSourceLength != DefaultMaxSourceLength {
		t.Errorf("MaxSourceLength = %d, want %d", engine.options.MaxSourceLength, DefaultMaxSourceLength)
	}
	if engine.logger == nil {
		t.Error("logger should default to the package logger")
	}
}
