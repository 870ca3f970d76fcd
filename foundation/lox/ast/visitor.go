// File: visitor.go
// Title: Lox AST Visitor
// Description: Generic visitor over the expression tree. Each consumer picks
//              its own result type R; Accept selects the visit method for
//              the concrete node.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Generic visitor with switch dispatch

package ast

import (
	"fmt"
)

// Visitor computes a result of type R for each node kind
type Visitor[R any] interface {
	VisitBinary(expr *Binary) R
	VisitGrouping(expr *Grouping) R
	VisitLiteral(expr *Literal) R
	VisitUnary(expr *Unary) R
}

// Accept dispatches e to the matching method of v. A nil expression yields
// the zero value of R.
func Accept[R any](e Expr, v Visitor[R]) R {
	switch n := e.(type) {
	case *Binary:
		return v.VisitBinary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Unary:
		return v.VisitUnary(n)
	case nil:
		var zero R
		return zero
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", e))
	}
}
