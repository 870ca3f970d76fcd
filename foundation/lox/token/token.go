// File: token.go
// Title: Lox Token Model
// Description: The closed set of lexical categories of the Lox language and
//              the immutable Token value produced by the lexer and consumed
//              by the parser.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token model

// Package token defines the lexical categories and tokens of Lox.
package token

import (
	"fmt"
	"strconv"
)

// Type represents the lexical category of a token
type Type int

const (
	// Single-character tokens
	LeftParen  Type = iota // (
	RightParen             // )
	LeftBrace              // {
	RightBrace             // }
	Comma                  // ,
	Dot                    // .
	Minus                  // -
	Plus                   // +
	Semicolon              // ;
	Slash                  // /
	Star                   // *

	// One or two character tokens
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier // name
	String     // "text"
	Number     // 123, 4.5

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var typeNames = [...]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Semicolon:    "SEMICOLON",
	Slash:        "SLASH",
	Star:         "STAR",
	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Number:       "NUMBER",
	And:          "AND",
	Class:        "CLASS",
	Else:         "ELSE",
	False:        "FALSE",
	Fun:          "FUN",
	For:          "FOR",
	If:           "IF",
	Nil:          "NIL",
	Or:           "OR",
	Print:        "PRINT",
	Return:       "RETURN",
	Super:        "SUPER",
	This:         "THIS",
	True:         "TRUE",
	Var:          "VAR",
	While:        "WHILE",
	EOF:          "EOF",
}

// String returns the upper-snake name of the token type
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// Token is a single lexeme with its category. Literal is a float64 for
// Number tokens, a string for String tokens and nil otherwise.
type Token struct {
	Type    Type        // Lexical category
	Lexeme  string      // Exact source text
	Literal interface{} // Decoded value of Number and String tokens
	Line    int         // Line of the first character (1-based)
}

// String renders the token as "TYPE lexeme literal"
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, FormatLiteral(t.Literal))
}

// FormatLiteral renders a literal value the way the tree printer does:
// nil as "nil", numbers in their shortest decimal form, strings raw.
func FormatLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

var keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupIdent returns the keyword type for ident, or Identifier. Keywords
// are matched case-sensitively.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Identifier
}

// IsStatementStart reports whether t begins a statement. The parser uses
// this set to find a safe place to resume after a syntax error.
func IsStatementStart(t Type) bool {
	switch t {
	case Class, Fun, Var, For, If, While, Print, Return:
		return true
	default:
		return false
	}
}
