// File: dump.go
// Title: Structured AST Dump
// Description: Converts a tree into nested maps so it can be emitted as
//              JSON or YAML by the CLI.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: JSON and YAML tree output
// - 2026-10-18 v0.1.0: Non-finite numbers dumped as text

package ast

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/lox/foundation/lox/token"
)

// Dumper is a Visitor[map[string]interface{}] producing a structured tree
type Dumper struct{}

// Dump converts e into nested maps. Every map has a "type" key holding
// the node kind.
func Dump(e Expr) map[string]interface{} {
	return Accept[map[string]interface{}](e, Dumper{})
}

func (d Dumper) VisitBinary(expr *Binary) map[string]interface{} {
	return map[string]interface{}{
		"type":     Kind(expr),
		"operator": expr.Operator.Lexeme,
		"line":     expr.Operator.Line,
		"left":     Accept[map[string]interface{}](expr.Left, d),
		"right":    Accept[map[string]interface{}](expr.Right, d),
	}
}

func (d Dumper) VisitGrouping(expr *Grouping) map[string]interface{} {
	return map[string]interface{}{
		"type":       Kind(expr),
		"expression": Accept[map[string]interface{}](expr.Expression, d),
	}
}

// VisitLiteral keeps the literal value. Numbers outside the float64 range
// are stored as their printed text since JSON has no infinity.
func (d Dumper) VisitLiteral(expr *Literal) map[string]interface{} {
	value := expr.Value
	if f, ok := value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		value = token.FormatLiteral(f)
	}
	return map[string]interface{}{
		"type":  Kind(expr),
		"value": value,
	}
}

func (d Dumper) VisitUnary(expr *Unary) map[string]interface{} {
	return map[string]interface{}{
		"type":     Kind(expr),
		"operator": expr.Operator.Lexeme,
		"line":     expr.Operator.Line,
		"right":    Accept[map[string]interface{}](expr.Right, d),
	}
}

// Output formats understood by MarshalTree
const (
	FormatSExpr = "sexpr"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// MarshalTree renders e in the named format: "sexpr" (the Printer form),
// "json" or "yaml". The result ends without a trailing newline.
func MarshalTree(e Expr, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatSExpr, "":
		return []byte(Print(e)), nil
	case FormatJSON:
		return json.MarshalIndent(Dump(e), "", "  ")
	case FormatYAML:
		out, err := yaml.Marshal(Dump(e))
		if err != nil {
			return nil, err
		}
		return []byte(strings.TrimRight(string(out), "\n")), nil
	default:
		return nil, fmt.Errorf("unknown tree format %q", format)
	}
}
