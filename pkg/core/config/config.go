package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "LOX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`

	// path the configuration was loaded from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds front end limits
type ParserConfig struct {
	MaxSourceLength int `toml:"max_source_length" yaml:"max_source_length"`
}

// OutputConfig controls how trees and diagnostics are rendered
type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	Color      *bool  `toml:"color" yaml:"color"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	HistoryFile    string `toml:"history_file" yaml:"history_file"`
	HistoryEnabled *bool  `toml:"history_enabled" yaml:"history_enabled"`
	HistoryDB      string `toml:"history_db" yaml:"history_db"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, loxerror.Wrap(err, "config file not found").
				WithCode(loxerror.CodeConfigError).
				WithDetail("path", path)
		}
		return nil, loxerror.Wrap(err, "failed to read config").
			WithCode(loxerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", "":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, loxerror.New(fmt.Sprintf("unsupported config format %q", ext)).
			WithCode(loxerror.CodeConfigError).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, loxerror.Wrap(err, "failed to parse config").
			WithCode(loxerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.path = path

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in file paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads the configuration from an explicit path, the LOX_CONFIG
// variable or the first default location that exists. Without any file the
// defaults are returned.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{"./lox.toml", "./lox.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lox", "config.toml"))
	}
	return paths
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// ColorEnabled reports whether coloured output is configured
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// HistoryEnabled reports whether REPL runs are recorded
func (c *Config) HistoryEnabled() bool {
	return c.REPL.HistoryEnabled == nil || *c.REPL.HistoryEnabled
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return loxerror.New("invalid configuration value").
			WithCode(loxerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Parser.MaxSourceLength <= 0 {
		return invalid("parser.max_source_length", c.Parser.MaxSourceLength)
	}
	switch c.Output.Format {
	case ast.FormatSExpr, ast.FormatJSON, ast.FormatYAML:
	default:
		return invalid("output.format", c.Output.Format)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = mdwlog.FormatText.String()
	}

	// Parser
	if c.Parser.MaxSourceLength == 0 {
		c.Parser.MaxSourceLength = 1 << 20
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = ast.FormatSExpr
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = "${HOME}/.lox_history"
	}
	if c.REPL.HistoryDB == "" {
		c.REPL.HistoryDB = "${HOME}/.local/share/lox/history.db"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
	c.REPL.HistoryDB = os.ExpandEnv(c.REPL.HistoryDB)
}
