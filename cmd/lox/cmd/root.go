package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/pkg/core/config"
	"github.com/msto63/lox/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	noColor      bool
)

// app is the state shared by all commands of one invocation
type app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *lox.Engine
	styles styles
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox expression front end",
	Long: `lox scans and parses Lox expressions and prints their syntax tree.

Without arguments an interactive prompt is started. With a single
script argument the file is parsed and its tree printed.`,
	Args:              maxArgs(1),
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL(cmd)
		}
		return runSource(cmd, args[0])
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the command line and reports errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return loxerror.ExitOK
	}
	return loxerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LOX_CONFIG, ./lox.toml, ./lox.yaml, ~/.config/lox/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "tree output format: sexpr, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return loxerror.Wrap(err, "invalid flags").WithCode(loxerror.CodeUsage)
	})
}

// setup loads the configuration and builds logger and engine
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if outputFormat != "" {
		switch strings.ToLower(outputFormat) {
		case ast.FormatSExpr, ast.FormatJSON, ast.FormatYAML:
			cfg.Output.Format = strings.ToLower(outputFormat)
		default:
			return loxerror.New(fmt.Sprintf("unknown output format %q", outputFormat)).
				WithCode(loxerror.CodeUsage)
		}
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Name:    "lox",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Verbose: verbose,
		Output:  cmd.ErrOrStderr(),
	})
	mdwlog.SetDefault(logger)

	current = &app{
		cfg:    cfg,
		logger: logger,
		engine: lox.NewEngine(lox.Options{
			Logger:          logger,
			MaxSourceLength: cfg.Parser.MaxSourceLength,
		}),
		styles: newStyles(cfg.ColorEnabled() && !noColor),
	}

	logger.Debug("configuration loaded", mdwlog.Fields{
		"path":   cfg.Path(),
		"format": cfg.Output.Format,
	})
	return nil
}

// maxArgs rejects more than n positional arguments as a usage error
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return loxerror.New("Usage: " + cmd.UseLine()).
				WithCode(loxerror.CodeUsage).
				WithDetail("args", len(args))
		}
		return nil
	}
}

// printError writes err to w. Source errors are skipped since their
// diagnostics were already printed.
func printError(w io.Writer, err error) {
	if loxerror.HasCode(err, loxerror.CodeLexical) || loxerror.HasCode(err, loxerror.CodeSyntax) {
		return
	}

	s := newStyles(!noColor)
	if current != nil {
		s = current.styles
	}
	if loxerror.HasCode(err, loxerror.CodeUsage) {
		fmt.Fprintln(w, s.paint(s.err, err.Error()))
		return
	}
	fmt.Fprintln(w, s.paint(s.err, "Error: "+err.Error()))
}
