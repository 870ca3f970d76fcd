// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, derived loggers, level
//              filtering and coded error logging.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial logger tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	loxerror "github.com/msto63/lox/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerDerivedCopies(t *testing.T) {
	base := New()
	derived := base.WithLevel(LevelDebug).WithField("component", "lox-lexer")

	if derived == base {
		t.Fatal("With* should return a new logger instance")
	}
	if base.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
	if _, ok := base.contextFields["component"]; ok {
		t.Error("WithField() should not modify original logger")
	}
	if derived.contextFields["component"] != "lox-lexer" {
		t.Errorf("derived component = %v, want lox-lexer", derived.contextFields["component"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were logged: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("expected warn and error messages, got %q", out)
	}
}

func TestLoggerJSONFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithName("lox").
		WithCorrelationID("run-1").
		WithField("component", "lox-parser").
		Debug("parse completed", Fields{"nodes": 5})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	tests := map[string]interface{}{
		"message":        "parse completed",
		"level":          "debug",
		"logger":         "lox",
		"correlation_id": "run-1",
		"component":      "lox-parser",
		"nodes":          float64(5),
	}
	for key, want := range tests {
		if data[key] != want {
			t.Errorf("%s = %v, want %v", key, data[key], want)
		}
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "syntax error is medium severity",
			err:       loxerror.New("parse failed").WithCode(loxerror.CodeSyntax),
			wantLevel: "warn",
			wantCode:  "LOX_SYNTAX",
		},
		{
			name:      "io error is high severity",
			err:       loxerror.New("read failed").WithCode(loxerror.CodeIO),
			wantLevel: "error",
			wantCode:  "IO_ERROR",
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if logger.IsLevelEnabled(level) {
			t.Errorf("NewNop() enables %v", level)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelInfo, FormatText)
	SetDefault(logger)
	Info("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
