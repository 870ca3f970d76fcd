// File: doc.go
// Title: Lox Abstract Syntax Tree Package Documentation
// Description: Expression tree produced by the parser, the generic visitor
//              used to traverse it and the consumers built on that visitor.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the expression tree of Lox.

The tree has exactly four node kinds: Binary, Grouping, Literal and Unary.
The set is sealed; Accept dispatches over it with a type switch, so new
consumers are written as a Visitor[R] without touching the nodes.

Consumers provided here:

  - Printer renders the canonical parenthesized prefix form
  - Dump and MarshalTree produce a structured form for JSON and YAML output
  - Measure collects node counts and depth
*/
package ast
