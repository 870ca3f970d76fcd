// File: printer.go
// Title: Lox AST Printer
// Description: Renders a tree in parenthesized prefix form, e.g.
//              (* (group (+ 1 2)) 3). The output is deterministic and is
//              the format used by golden tests and the CLI.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial printer

package ast

import (
	"strings"

	"github.com/msto63/lox/foundation/lox/token"
)

// Printer is a Visitor[string] producing the parenthesized form
type Printer struct{}

// Print renders e. A nil expression renders as the empty string.
func Print(e Expr) string {
	return Accept[string](e, Printer{})
}

func (p Printer) VisitBinary(expr *Binary) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p Printer) VisitGrouping(expr *Grouping) string {
	return p.parenthesize("group", expr.Expression)
}

func (p Printer) VisitLiteral(expr *Literal) string {
	return token.FormatLiteral(expr.Value)
}

func (p Printer) VisitUnary(expr *Unary) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Accept[string](e, p))
	}
	b.WriteString(")")
	return b.String()
}
