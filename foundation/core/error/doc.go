// Package error provides coded, contextual errors for the lox toolchain.
//
// Package: error
// Title: Error Handling Framework
// Description: Structured errors carrying a code, a severity, the failing
//              operation and arbitrary details. Codes classify failures of
//              the pipeline (lexical, syntax) and of its surroundings
//              (configuration, I/O, storage) and map to process exit codes.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import loxerror "github.com/msto63/lox/foundation/core/error"
//
//	err := loxerror.New("source exceeds maximum length").
//		WithCode(loxerror.CodeInvalidInput).
//		WithOperation("lox.Run").
//		WithDetail("length", len(src))
//
//	if loxerror.HasCode(err, loxerror.CodeSyntax) {
//		os.Exit(loxerror.GetCode(err).ExitCode())
//	}
package error
