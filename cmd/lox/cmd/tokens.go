package cmd

import (
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Scan a file or standard input and print its tokens",
	Long: `Scan Lox source and print one token per line: line number, token
type, lexeme and literal value. Lexical errors are printed to stderr.`,
	Args: maxArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	source, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	result, err := current.engine.Tokens(source)
	if result != nil {
		printTokens(cmd.OutOrStdout(), result)
		printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	}
	return err
}
