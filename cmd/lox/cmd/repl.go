package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	loxerror "github.com/msto63/lox/foundation/core/error"
	mdwlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/internal/history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt",
	Long: `Start an interactive prompt. Every line is parsed on its own and its
tree printed; errors are reported and the prompt continues.

Type :quit or press Ctrl-D to leave.`,
	Args: maxArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := current.cfg.REPL.HistoryFile
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	store := openHistoryForREPL(ctx)
	if store != nil {
		defer store.Close()
	}

	for {
		line, err := ln.Prompt(current.cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return loxerror.Wrap(err, "failed to read input").WithCode(loxerror.CodeIO)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return nil
			}
			fmt.Fprintln(errOut, current.styles.paint(current.styles.muted, "unknown command. Type :quit to exit."))
			continue
		}

		evalLine(ctx, out, errOut, store, line)
	}
}

// evalLine parses one line, prints its tree or diagnostics and records the
// run in store when one is given. Errors never end the session.
func evalLine(ctx context.Context, out, errOut io.Writer, store *history.Store, line string) {
	result, err := current.engine.Run(line)

	entry := &history.Entry{Source: line, Success: err == nil}
	switch {
	case result == nil:
		printError(errOut, err)
		entry.Diagnostics = []string{err.Error()}
	case err != nil:
		entry.ID = result.RunID
		printDiagnostics(errOut, result.Diagnostics)
		for _, d := range result.Diagnostics {
			entry.Diagnostics = append(entry.Diagnostics, d.String())
		}
	default:
		entry.ID = result.RunID
		tree, renderErr := renderTree(result)
		if renderErr != nil {
			printError(errOut, renderErr)
			entry.Success = false
			entry.Diagnostics = []string{renderErr.Error()}
			break
		}
		fmt.Fprintln(out, tree)
		entry.Output = result.Printed()
	}

	if store == nil {
		return
	}
	if err := store.Record(ctx, entry); err != nil {
		current.logger.WarnWithErr("failed to record history", err, mdwlog.Fields{"run_id": entry.ID})
	}
}

// openHistoryForREPL opens the history store when enabled. Failures are
// logged and disable recording for the session.
func openHistoryForREPL(ctx context.Context) *history.Store {
	if !current.cfg.HistoryEnabled() {
		return nil
	}
	store, err := history.Open(ctx, current.cfg.REPL.HistoryDB)
	if err != nil {
		current.logger.WarnWithErr("history disabled", err)
		return nil
	}
	return store
}
