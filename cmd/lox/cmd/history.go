package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/internal/history"
)

var (
	historyLimit int
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently evaluated prompt lines",
	Long: `List the lines evaluated at the interactive prompt, newest first,
together with their tree or diagnostics.`,
	Args: maxArgs(0),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 for all)")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "remove entries older than this age before listing")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := history.Open(ctx, current.cfg.REPL.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyPrune > 0 {
		removed, err := store.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pruned %d entries\n", removed)
	}

	entries, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	s := current.styles
	for _, e := range entries {
		status := s.paint(s.ok, "[+]")
		if !e.Success {
			status = s.paint(s.err, "[-]")
		}
		fmt.Fprintf(out, "%s %s %s\n", s.paint(s.muted, e.Timestamp.Local().Format("2006-01-02 15:04:05")), status, e.Source)
		if e.Output != "" {
			fmt.Fprintf(out, "    => %s\n", e.Output)
		}
		for _, d := range e.Diagnostics {
			fmt.Fprintf(out, "    %s\n", s.paint(s.err, d))
		}
	}
	fmt.Fprintf(out, "%d of %d entries\n", len(entries), total)
	return nil
}
