package config

import (
	"os"
	"path/filepath"
	"testing"

	loxerror "github.com/msto63/lox/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := Default()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"log level", cfg.General.LogLevel, "warn"},
		{"log format", cfg.General.LogFormat, "text"},
		{"max source length", cfg.Parser.MaxSourceLength, 1 << 20},
		{"output format", cfg.Output.Format, "sexpr"},
		{"prompt", cfg.REPL.Prompt, "> "},
		{"history file", cfg.REPL.HistoryFile, "/home/tester/.lox_history"},
		{"history db", cfg.REPL.HistoryDB, "/home/tester/.local/share/lox/history.db"},
		{"color", cfg.ColorEnabled(), true},
		{"history enabled", cfg.HistoryEnabled(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv("LOX_TEST_DIR", "/tmp/lox-test")
	path := writeConfig(t, "lox.toml", `
[general]
log_level = "debug"
log_format = "json"

[parser]
max_source_length = 4096

[output]
format = "yaml"
color = false
show_tokens = true

[repl]
prompt = "lox> "
history_enabled = false
history_db = "${LOX_TEST_DIR}/history.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Parser.MaxSourceLength != 4096 {
		t.Errorf("MaxSourceLength = %d, want 4096", cfg.Parser.MaxSourceLength)
	}
	if cfg.Output.Format != "yaml" || cfg.ColorEnabled() || !cfg.Output.ShowTokens {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.REPL.Prompt != "lox> " || cfg.HistoryEnabled() {
		t.Errorf("repl = %+v", cfg.REPL)
	}
	if cfg.REPL.HistoryDB != "/tmp/lox-test/history.db" {
		t.Errorf("HistoryDB = %q, env var not expanded", cfg.REPL.HistoryDB)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "lox.yaml", `
general:
  log_level: info
output:
  format: json
repl:
  prompt: "? "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "info" || cfg.Output.Format != "json" || cfg.REPL.Prompt != "? " {
		t.Errorf("config = %+v", cfg)
	}
	// Unset values fall back to defaults
	if cfg.Parser.MaxSourceLength != 1<<20 || cfg.General.LogFormat != "text" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode loxerror.Code
	}{
		{"invalid toml", "bad.toml", "[general\nlog_level=", loxerror.CodeConfigError},
		{"invalid yaml", "bad.yaml", "general: [unclosed", loxerror.CodeConfigError},
		{"unsupported extension", "lox.ini", "x=1", loxerror.CodeConfigError},
		{"unknown log level", "lvl.toml", "[general]\nlog_level = \"loud\"", loxerror.CodeInvalidConfig},
		{"unknown log format", "fmt.toml", "[general]\nlog_format = \"xml\"", loxerror.CodeInvalidConfig},
		{"unknown output format", "out.toml", "[output]\nformat = \"dot\"", loxerror.CodeInvalidConfig},
		{"negative limit", "lim.toml", "[parser]\nmax_source_length = -1", loxerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := loxerror.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !loxerror.HasCode(err, loxerror.CodeConfigError) {
		t.Errorf("code = %v, want CONFIG_ERROR", loxerror.GetCode(err))
	}
}

func TestResolve(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		env := writeConfig(t, "env.toml", "[repl]\nprompt = \"env\"")
		explicit := writeConfig(t, "explicit.toml", "[repl]\nprompt = \"explicit\"")
		t.Setenv(EnvConfigPath, env)

		cfg, err := Resolve(explicit)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.REPL.Prompt != "explicit" {
			t.Errorf("prompt = %q, want explicit", cfg.REPL.Prompt)
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(EnvConfigPath, writeConfig(t, "env.toml", "[repl]\nprompt = \"env\""))

		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.REPL.Prompt != "env" {
			t.Errorf("prompt = %q, want env", cfg.REPL.Prompt)
		}
	})

	t.Run("defaults without any file", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("HOME", t.TempDir())
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(oldWD) })

		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Path() != "" || cfg.REPL.Prompt != "> " {
			t.Errorf("expected defaults, got %+v from %q", cfg, cfg.Path())
		}
	})
}

func TestLoad_ExampleConfig(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load(filepath.Join("..", "..", "..", "configs", "lox.example.toml"))
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	defaults := Default()
	if cfg.General != defaults.General || cfg.Parser != defaults.Parser || cfg.REPL.HistoryDB != defaults.REPL.HistoryDB {
		t.Errorf("example config differs from defaults: %+v", cfg)
	}
}
