package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	loxerror "github.com/msto63/lox/foundation/core/error"
	"github.com/msto63/lox/foundation/lox"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/parser"
)

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Parse a file or standard input and print the tree",
	Long: `Parse a Lox expression from a file, or from standard input when the
argument is "-" or missing, and print its syntax tree in the configured
format. Diagnostics go to stderr; any error exits with status 65.`,
	Args: maxArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		return runSource(cmd, path)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSource(cmd *cobra.Command, path string) error {
	source, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	result, err := current.engine.Run(source)
	if result != nil {
		if current.cfg.Output.ShowTokens {
			printTokens(cmd.OutOrStdout(), result)
		}
		printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	}
	if err != nil {
		return err
	}

	tree, err := renderTree(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree)
	return nil
}

// readSource reads path, or standard input for "-"
func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", loxerror.Wrap(err, "failed to read standard input").
				WithCode(loxerror.CodeIO)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := loxerror.CodeIO
		if os.IsNotExist(err) {
			code = loxerror.CodeNotFound
		}
		return "", loxerror.Wrap(err, "failed to read script").
			WithCode(code).
			WithDetail("path", path)
	}
	return string(data), nil
}

// renderTree formats the parsed tree in the configured output format
func renderTree(result *lox.Result) (string, error) {
	out, err := ast.MarshalTree(result.Expr, current.cfg.Output.Format)
	if err != nil {
		return "", loxerror.Wrap(err, "failed to render tree").
			WithCode(loxerror.CodeInternal).
			WithDetail("format", current.cfg.Output.Format)
	}
	return current.styles.paint(current.styles.tree, string(out)), nil
}

func printDiagnostics(w io.Writer, diagnostics []parser.Diagnostic) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, current.styles.diagnostic(d))
	}
}

func printTokens(w io.Writer, result *lox.Result) {
	for _, t := range result.Tokens {
		fmt.Fprintln(w, current.styles.token(t))
	}
}
