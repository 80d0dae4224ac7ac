package history

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/pkgsort/internal/history"
	"nathanbeddoewebdev/pkgsort/internal/manifest"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries",
		Long: `List recent history entries stored locally.

Examples:
  pkgsort history list
  pkgsort history list --limit 50
  pkgsort history list --path ./package.json
  pkgsort history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("path", "", "Filter by manifest path")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	filter, _ := cmd.Flags().GetString("path")
	filter = strings.TrimSpace(filter)
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []history.Entry
	if filter != "" {
		entries, err = repo.ListByPath(manifestKey(filter), limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOUTCOME\tDURATION\tPATH\tDETAIL")
	fmt.Fprintln(w, "----\t-------\t--------\t----\t------")
	for _, entry := range entries {
		timeStr := entry.Timestamp.Local().Format("2006-01-02 15:04:05")
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			timeStr,
			entry.Outcome,
			formatDuration(entry.DurationMs),
			entry.Path,
			detail,
		)
	}
	w.Flush()
	return nil
}

// manifestKey converts a user-supplied path into the absolute manifest path
// under which runs are recorded.
func manifestKey(path string) string {
	if resolved, err := manifest.ResolvePath(path); err == nil {
		path = resolved
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
