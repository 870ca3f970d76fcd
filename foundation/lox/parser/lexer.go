// File: lexer.go
// Title: Lox Lexical Analyzer
// Description: Converts Lox source text into tokens. The scan position is
//              a cursor value passed through the scanning functions; the
//              Lexer itself only holds its collaborators and can be reused
//              for any number of sources.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation

package parser

import (
	"strconv"
	"unicode/utf8"

	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/token"
)

// Lexer error messages
const (
	msgUnexpectedCharacter = "Unexpected character."
	msgUnterminatedString  = "Unterminated string."
)

// Options configures a Lexer or Parser
type Options struct {
	Reporter Reporter       // Receives diagnostics; nil discards them
	Logger   *mdwlog.Logger // Debug output; nil uses the default logger
}

// Lexer performs lexical analysis of Lox source text
type Lexer struct {
	reporter Reporter
	logger   *mdwlog.Logger
}

// NewLexer creates a new lexer
func NewLexer(opts Options) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Lexer{
		reporter: reporterOrDiscard(opts.Reporter),
		logger:   logger.WithField("component", "lox-lexer"),
	}
}

// Scan tokenizes source. Problems are reported and skipped, so Scan always
// returns a token list ending in exactly one EOF token.
func (l *Lexer) Scan(source string) []token.Token {
	timer := l.logger.StartTimer("scan")

	var tokens []token.Token
	errors := 0

	c := cursor{src: source, line: 1}
	for !c.atEnd() {
		c.start, c.startLine = c.current, c.line

		var s step
		c, s = scanToken(c)
		switch {
		case s.err != "":
			errors++
			l.reporter.Report(c.line, "", s.err)
		case s.emit:
			tokens = append(tokens, s.tok)
			if l.logger.IsLevelEnabled(mdwlog.LevelTrace) {
				l.logger.Trace("token", mdwlog.Fields{"token": s.tok.String(), "line": s.tok.Line})
			}
		}
	}
	tokens = append(tokens, token.Token{Type: token.EOF, Line: c.line})

	timer.WithField("tokens", len(tokens)).
		WithField("errors", errors).
		WithField("lines", c.line).
		Stop()
	return tokens
}

// cursor is the scan position. It is passed and returned by value.
type cursor struct {
	src       string
	start     int // First byte of the lexeme being scanned
	startLine int // Line of the first byte of the lexeme
	current   int // Next byte to read
	line      int // Current line (1-based)
}

func (c cursor) atEnd() bool {
	return c.current >= len(c.src)
}

// peek returns the next byte without consuming it, or 0 at the end
func (c cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.current]
}

func (c cursor) peekNext() byte {
	if c.current+1 >= len(c.src) {
		return 0
	}
	return c.src[c.current+1]
}

func (c cursor) advance() (cursor, byte) {
	ch := c.src[c.current]
	c.current++
	return c, ch
}

// match consumes the next byte if it equals expected
func (c cursor) match(expected byte) (cursor, bool) {
	if c.atEnd() || c.src[c.current] != expected {
		return c, false
	}
	c.current++
	return c, true
}

func (c cursor) lexeme() string {
	return c.src[c.start:c.current]
}

func (c cursor) token(t token.Type, literal interface{}) token.Token {
	return token.Token{Type: t, Lexeme: c.lexeme(), Literal: literal, Line: c.startLine}
}

// step is the outcome of scanning one lexeme: a token, an error message,
// or neither (whitespace and comments).
type step struct {
	tok  token.Token
	emit bool
	err  string
}

func emit(tok token.Token) step {
	return step{tok: tok, emit: true}
}

var singleChar = map[byte]token.Type{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	',': token.Comma,
	'.': token.Dot,
	'-': token.Minus,
	'+': token.Plus,
	';': token.Semicolon,
	'*': token.Star,
}

// withEqual maps a character to its plain and "=" suffixed token types
var withEqual = map[byte][2]token.Type{
	'!': {token.Bang, token.BangEqual},
	'=': {token.Equal, token.EqualEqual},
	'<': {token.Less, token.LessEqual},
	'>': {token.Greater, token.GreaterEqual},
}

func scanToken(c cursor) (cursor, step) {
	c, ch := c.advance()

	if t, ok := singleChar[ch]; ok {
		return c, emit(c.token(t, nil))
	}
	if pair, ok := withEqual[ch]; ok {
		next, eq := c.match('=')
		if eq {
			return next, emit(next.token(pair[1], nil))
		}
		return c, emit(c.token(pair[0], nil))
	}

	switch {
	case ch == '/':
		next, comment := c.match('/')
		if !comment {
			return c, emit(c.token(token.Slash, nil))
		}
		// The newline is left for the next scan so the line count advances
		for next.peek() != '\n' && !next.atEnd() {
			next, _ = next.advance()
		}
		return next, step{}
	case ch == ' ' || ch == '\r' || ch == '\t':
		return c, step{}
	case ch == '\n':
		c.line++
		return c, step{}
	case ch == '"':
		return scanString(c)
	case isDigit(ch):
		return scanNumber(c)
	case isAlpha(ch):
		return scanIdentifier(c)
	}

	// Skip the whole rune so a multi-byte character is reported once
	if ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(c.src[c.start:])
		c.current = c.start + size
	}
	return c, step{err: msgUnexpectedCharacter}
}

// scanString reads a string literal. A backslash keeps the next character
// from closing the string; the literal is the raw text between the quotes.
func scanString(c cursor) (cursor, step) {
	for !c.atEnd() && c.peek() != '"' {
		var ch byte
		c, ch = c.advance()
		if ch == '\\' && !c.atEnd() {
			c, ch = c.advance()
		}
		if ch == '\n' {
			c.line++
		}
	}

	if c.atEnd() {
		return c, step{err: msgUnterminatedString}
	}

	c, _ = c.advance() // closing quote
	return c, emit(c.token(token.String, c.src[c.start+1:c.current-1]))
}

func scanNumber(c cursor) (cursor, step) {
	for isDigit(c.peek()) {
		c, _ = c.advance()
	}

	// A fractional part needs a digit after the dot; "123." leaves the dot
	if c.peek() == '.' && isDigit(c.peekNext()) {
		c, _ = c.advance()
		for isDigit(c.peek()) {
			c, _ = c.advance()
		}
	}

	// Only a range error is possible here; it yields ±Inf which is kept.
	value, _ := strconv.ParseFloat(c.lexeme(), 64)
	return c, emit(c.token(token.Number, value))
}

func scanIdentifier(c cursor) (cursor, step) {
	for isAlphaNumeric(c.peek()) {
		c, _ = c.advance()
	}
	return c, emit(c.token(token.LookupIdent(c.lexeme()), nil))
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

// Tokenize is a convenience function that scans source with a fresh lexer
func Tokenize(source string, r Reporter) []token.Token {
	return NewLexer(Options{Reporter: r}).Scan(source)
}
