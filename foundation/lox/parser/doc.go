// File: doc.go
// Title: Lox Parser Package Documentation
// Description: Lexical analysis and recursive-descent parsing of Lox
//              expressions, with error reporting through an injected
//              Reporter.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer and parser

/*
Package parser turns Lox source text into an expression tree.

The package has two stages:

  - Lexer.Scan converts source text into tokens. Invalid characters and
    unterminated strings are reported and skipped; the scan always completes
    and always ends with a single EOF token.
  - Parser.Parse builds an ast.Expr from the tokens following the grammar

	expression → equality
	equality   → comparison ( ( "!=" | "==" ) comparison )*
	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term       → factor ( ( "-" | "+" ) factor )*
	factor     → unary ( ( "/" | "*" ) unary )*
	unary      → ( "!" | "-" ) unary | primary
	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"

Both stages report problems to a Reporter in the form (line, where, message).
A syntax error is reported once and makes Parse return a nil tree together
with an error wrapping *ParseError.
*/
package parser
