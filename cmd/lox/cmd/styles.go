package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/lox/foundation/lox/parser"
	"github.com/msto63/lox/foundation/lox/token"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles holds the renderers for terminal output. The zero value renders
// plain text.
type styles struct {
	color bool

	err       lipgloss.Style
	location  lipgloss.Style
	tree      lipgloss.Style
	tokenType lipgloss.Style
	literal   lipgloss.Style
	muted     lipgloss.Style
	ok        lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}

	return styles{
		color: true,
		err: lipgloss.NewStyle().
			Foreground(colorError),
		location: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		tree: lipgloss.NewStyle().
			Foreground(colorPrimary),
		tokenType: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		literal: lipgloss.NewStyle().
			Foreground(colorAccent),
		muted: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		ok: lipgloss.NewStyle().
			Foreground(colorSecondary),
	}
}

// paint renders text with st, or returns it unchanged without colors
func (s styles) paint(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// diagnostic renders a diagnostic in the "[line N] Error<where>: message" form
func (s styles) diagnostic(d parser.Diagnostic) string {
	plain := d.String()
	prefix := len(plain) - len(d.Message)
	return s.paint(s.location, plain[:prefix]) + s.paint(s.err, d.Message)
}

// token renders one token per line: type, lexeme and literal
func (s styles) token(t token.Token) string {
	line := s.paint(s.muted, lineNumber(t.Line)) + " " + s.paint(s.tokenType, t.Type.String())
	if t.Lexeme != "" {
		line += " " + t.Lexeme
	}
	if t.Literal != nil {
		line += " " + s.paint(s.literal, token.FormatLiteral(t.Literal))
	}
	return line
}

func lineNumber(n int) string {
	return fmt.Sprintf("%4d", n)
}
