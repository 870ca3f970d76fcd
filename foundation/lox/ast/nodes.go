// File: nodes.go
// Title: Lox AST Node Definitions
// Description: The four expression node kinds. Nodes are built bottom-up by
//              the parser, own their children exclusively and are never
//              modified after construction.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial node set

package ast

import (
	"github.com/msto63/lox/foundation/lox/token"
)

// Expr is any expression node. Only the types in this package implement it.
type Expr interface {
	exprNode()
}

// Binary is an infix operation such as a + b or a == b
type Binary struct {
	Left     Expr        // Left operand
	Operator token.Token // One of + - * / == != < <= > >=
	Right    Expr        // Right operand
}

// Grouping is a parenthesized expression
type Grouping struct {
	Expression Expr
}

// Literal is a constant: nil, a bool, a float64 or a string
type Literal struct {
	Value interface{}
}

// Unary is a prefix operation: !x or -x
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}

// Kind returns the lower-case node kind name, or "" for nil
func Kind(e Expr) string {
	switch e.(type) {
	case *Binary:
		return "binary"
	case *Grouping:
		return "grouping"
	case *Literal:
		return "literal"
	case *Unary:
		return "unary"
	default:
		return ""
	}
}
