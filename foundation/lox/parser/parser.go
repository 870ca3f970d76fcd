// File: parser.go
// Title: Lox Recursive-Descent Parser
// Description: Builds an expression tree from a token list. Every grammar
//              rule takes the current token position and returns the node,
//              the position after it and an error; no parser state is kept
//              between rules.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/token"
)

// Parser error messages
const (
	msgExpectExpression = "Expect expression."
	msgExpectRightParen = "Expected ')' after expression."
)

// ParseError describes the syntax error that stopped a parse
type ParseError struct {
	Token   token.Token // Offending token
	Message string
}

// Where returns the location context: " at end" or " at '<lexeme>'"
func (e *ParseError) Where() string {
	if e.Token.Type == token.EOF {
		return " at end"
	}
	return " at '" + e.Token.Lexeme + "'"
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return Diagnostic{Kind: KindSyntax, Line: e.Token.Line, Where: e.Where(), Message: e.Message}.String()
}

// Parser parses Lox expressions
type Parser struct {
	reporter Reporter
	logger   *mdwlog.Logger
}

// NewParser creates a new parser
func NewParser(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Parser{
		reporter: reporterOrDiscard(opts.Reporter),
		logger:   logger.WithField("component", "lox-parser"),
	}
}

// Parse builds a tree from tokens. On a syntax error the error is reported
// once, the returned tree is nil and err wraps a *ParseError. Tokens after
// a complete expression are not examined.
func (p *Parser) Parse(tokens []token.Token) (expr ast.Expr, err error) {
	timer := p.logger.StartTimer("parse").WithField("tokens", len(tokens))

	defer func() {
		if r := recover(); r != nil {
			expr = nil
			err = loxerror.New(fmt.Sprintf("parser fault: %v", r)).
				WithCode(loxerror.CodeInternal).
				WithOperation("parser.Parse")
			timer.StopWithError(err)
		}
	}()

	d := newDescent(tokens, p.reporter)
	expr, _, perr := d.expression(0)
	if perr != nil {
		line := perr.(*ParseError).Token.Line
		err = loxerror.Wrap(perr, "parse failed").
			WithCode(loxerror.CodeSyntax).
			WithOperation("parser.Parse").
			WithDetail("line", line)
		// Syntax errors reach the user through the reporter
		timer.WithField("success", false).WithField("line", line).Stop()
		return nil, err
	}

	if p.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		stats := ast.Measure(expr)
		timer.WithField("nodes", stats.Nodes).WithField("depth", stats.Depth)
	}
	timer.Stop()
	return expr, nil
}

// rule is the signature shared by all grammar rules
type rule func(pos int) (ast.Expr, int, error)

// descent walks an immutable token list. Positions are passed explicitly.
type descent struct {
	tokens   []token.Token
	reporter Reporter
}

// newDescent guarantees the token list ends in EOF so that advance can
// never run past the end.
func newDescent(tokens []token.Token, r Reporter) *descent {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		terminated := make([]token.Token, n, n+1)
		copy(terminated, tokens)
		tokens = append(terminated, token.Token{Type: token.EOF, Line: line})
	}
	return &descent{tokens: tokens, reporter: reporterOrDiscard(r)}
}

func (d *descent) expression(pos int) (ast.Expr, int, error) {
	return d.equality(pos)
}

func (d *descent) equality(pos int) (ast.Expr, int, error) {
	return d.leftAssoc(pos, d.comparison, token.BangEqual, token.EqualEqual)
}

func (d *descent) comparison(pos int) (ast.Expr, int, error) {
	return d.leftAssoc(pos, d.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (d *descent) term(pos int) (ast.Expr, int, error) {
	return d.leftAssoc(pos, d.factor, token.Minus, token.Plus)
}

func (d *descent) factor(pos int) (ast.Expr, int, error) {
	return d.leftAssoc(pos, d.unary, token.Slash, token.Star)
}

// leftAssoc parses operand ( operator operand )* and folds the result to
// the left, so 1 - 2 - 3 becomes (1 - 2) - 3.
func (d *descent) leftAssoc(pos int, operand rule, operators ...token.Type) (ast.Expr, int, error) {
	left, pos, err := operand(pos)
	if err != nil {
		return nil, pos, err
	}

	for {
		next, ok := d.match(pos, operators...)
		if !ok {
			return left, pos, nil
		}
		operator := d.previous(next)

		right, after, err := operand(next)
		if err != nil {
			return nil, after, err
		}
		left = &ast.Binary{Left: left, Operator: operator, Right: right}
		pos = after
	}
}

func (d *descent) unary(pos int) (ast.Expr, int, error) {
	if next, ok := d.match(pos, token.Bang, token.Minus); ok {
		operator := d.previous(next)
		right, after, err := d.unary(next)
		if err != nil {
			return nil, after, err
		}
		return &ast.Unary{Operator: operator, Right: right}, after, nil
	}
	return d.primary(pos)
}

func (d *descent) primary(pos int) (ast.Expr, int, error) {
	if next, ok := d.match(pos, token.False); ok {
		return &ast.Literal{Value: false}, next, nil
	}
	if next, ok := d.match(pos, token.True); ok {
		return &ast.Literal{Value: true}, next, nil
	}
	if next, ok := d.match(pos, token.Nil); ok {
		return &ast.Literal{Value: nil}, next, nil
	}
	if next, ok := d.match(pos, token.Number, token.String); ok {
		return &ast.Literal{Value: d.previous(next).Literal}, next, nil
	}

	if next, ok := d.match(pos, token.LeftParen); ok {
		inner, after, err := d.expression(next)
		if err != nil {
			return nil, after, err
		}
		after, err = d.consume(after, token.RightParen, msgExpectRightParen)
		if err != nil {
			return nil, after, err
		}
		return &ast.Grouping{Expression: inner}, after, nil
	}

	return nil, pos, d.fail(d.peek(pos), msgExpectExpression)
}

// match advances past the current token if it has one of the given types
func (d *descent) match(pos int, types ...token.Type) (int, bool) {
	for _, t := range types {
		if d.check(pos, t) {
			return d.advance(pos), true
		}
	}
	return pos, false
}

// check reports whether the current token has type t. It is always false
// at EOF.
func (d *descent) check(pos int, t token.Type) bool {
	if d.isAtEnd(pos) {
		return false
	}
	return d.peek(pos).Type == t
}

// consume advances past a token of type t or fails at the current token
// without advancing.
func (d *descent) consume(pos int, t token.Type, message string) (int, error) {
	if d.check(pos, t) {
		return d.advance(pos), nil
	}
	return pos, d.fail(d.peek(pos), message)
}

// advance moves to the next token, stopping at EOF
func (d *descent) advance(pos int) int {
	if !d.isAtEnd(pos) {
		pos++
	}
	return pos
}

func (d *descent) isAtEnd(pos int) bool {
	return d.peek(pos).Type == token.EOF
}

func (d *descent) peek(pos int) token.Token {
	return d.tokens[pos]
}

func (d *descent) previous(pos int) token.Token {
	return d.tokens[pos-1]
}

// fail reports a syntax error at tok and returns it
func (d *descent) fail(tok token.Token, message string) error {
	perr := &ParseError{Token: tok, Message: message}
	d.reporter.Report(tok.Line, perr.Where(), message)
	return perr
}

// synchronize discards tokens until a statement boundary: just after a
// semicolon, or before a token that starts a statement. The token at pos
// is always discarded.
func (d *descent) synchronize(pos int) int {
	pos = d.advance(pos)

	for !d.isAtEnd(pos) {
		if d.previous(pos).Type == token.Semicolon {
			return pos
		}
		if token.IsStatementStart(d.peek(pos).Type) {
			return pos
		}
		pos = d.advance(pos)
	}
	return pos
}

// Synchronize returns the position at which parsing can resume after an
// error at pos. Out-of-range positions are clamped to the token list.
func Synchronize(tokens []token.Token, pos int) int {
	d := newDescent(tokens, nil)
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(d.tokens):
		pos = len(d.tokens) - 1
	}
	return d.synchronize(pos)
}

// ParseSource scans and parses source with fresh components sharing r
func ParseSource(source string, r Reporter) (ast.Expr, error) {
	opts := Options{Reporter: r}
	return NewParser(opts).Parse(NewLexer(opts).Scan(source))
}
