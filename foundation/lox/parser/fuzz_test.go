package parser

import (
	"testing"

	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/token"
)

func FuzzScanAndParse(f *testing.F) {
	seeds := []string{
		"",
		"1 - 2 - 3",
		"(1 + 2",
		`"unterminated`,
		"-123 * (45.67)",
		"!!nil == false",
		"@#$ 1.2.3 // comment",
		"\"multi\nline\" <= 0.5",
		"var x = 1; print x;",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	logger := mdwlog.NewNop()
	f.Fuzz(func(t *testing.T, source string) {
		c := NewCollector()
		opts := Options{Reporter: c, Logger: logger}

		tokens := NewLexer(opts).Scan(source)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
			t.Fatalf("Scan(%q) does not end in EOF", source)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Type == token.EOF {
				t.Fatalf("Scan(%q) produced an EOF before the end", source)
			}
		}

		syntaxBefore := c.HasKind(KindSyntax)
		expr, err := NewParser(opts).Parse(tokens)
		if (expr == nil) == (err == nil) {
			t.Fatalf("Parse(%q) = %v, %v; want exactly one of tree or error", source, expr, err)
		}
		if err != nil && (syntaxBefore || !c.HasKind(KindSyntax)) {
			t.Fatalf("Parse(%q) failed without reporting exactly once", source)
		}
		if expr != nil && ast.Print(expr) != ast.Print(expr) {
			t.Fatalf("Print is not deterministic for %q", source)
		}
	})
}
