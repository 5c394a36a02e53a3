// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbexport/internal/history"
	"github.com/pdiddy/nbexport/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent export attempts from the history ledger",
	Long: `History reads the SQLite ledger written when history_dir (or
--history-dir) is set and lists the most recent export attempts, newest
first.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of attempts to list")
	historyCmd.Flags().Bool("json", false, "output attempts as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.HistoryDir == "" {
		return fmt.Errorf("history is disabled: set history_dir in the config file or pass --history-dir")
	}

	store, err := history.NewStore(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(os.Stdout, records, jsonOutput)
}

func formatHistoryOutput(w io.Writer, records []types.ExportRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No export attempts recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-8s  %-9s  %s\n", "Exported", "Status", "Duration", "Notebook")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range records {
		fmt.Fprintf(w, "%-20s  %-8s  %-9s  %s\n",
			r.ExportedAt.Local().Format("2006-01-02 15:04:05"), r.Status, r.Duration.Round(10*time.Millisecond), r.Notebook)
		if r.Diagnostic != "" {
			diag := truncate(strings.ReplaceAll(r.Diagnostic, "\n", " "), 80)
			fmt.Fprintf(w, "%-20s  %s\n", "", diag)
		}
	}

	fmt.Fprintf(w, "\n%d attempts\n", len(records))
	return nil
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
