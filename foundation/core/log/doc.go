// Package log provides structured logging for the lox toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with contextual fields, pluggable
//              output formats and timers for measuring pipeline stages. The
//              scanner, parser and CLI all log through this package.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Structured logger with JSON, text, console and logfmt formats
// - 2026-10-18 v0.2.0: Console format rendered with lipgloss, stderr default output
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithField("component", "lox-parser")
//
//	logger.Debug("parse started", log.Fields{"tokens": len(tokens)})
//
//	timer := logger.StartTimer("scan")
//	tokens := lexer.Scan(src)
//	timer.WithField("tokens", len(tokens)).Stop()
package log
