package sort

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"nathanbeddoewebdev/pkgsort/internal/history"
	"nathanbeddoewebdev/pkgsort/internal/runner"
	"nathanbeddoewebdev/pkgsort/internal/tui/styles"

	"golang.org/x/term"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type resultJSON struct {
	Path       string `json:"path"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	Output     string `json:"output,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type reportJSON struct {
	Results []resultJSON   `json:"results"`
	Summary runner.Summary `json:"summary"`
}

// printResultsJSON encodes the results and their summary as indented JSON
// to stdout.
func printResultsJSON(cmd *cobra.Command, results []runner.Result) {
	report := reportJSON{
		Results: make([]resultJSON, len(results)),
		Summary: runner.Summarize(results),
	}
	for i, r := range results {
		report.Results[i] = resultJSON{
			Path:       r.Path,
			Outcome:    r.Outcome,
			Output:     string(r.Output),
			DurationMs: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			report.Results[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(report)
}

// printResults prints one status line per file. In dry-run mode stdout
// carries the manifests, so the status lines go to stderr.
func printResults(cmd *cobra.Command, results []runner.Result, dryRun bool) {
	out := cmd.OutOrStdout()
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if dryRun {
		out = cmd.ErrOrStderr()
		styled = term.IsTerminal(int(os.Stderr.Fd()))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range results {
		outcome := r.Outcome
		if styled {
			outcome = styles.OutcomeIndicator(r.Outcome)
		}
		detail := ""
		if r.Err != nil {
			detail = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", outcome, r.Path, detail)
	}
	w.Flush()

	s := runner.Summarize(results)
	line := fmt.Sprintf("%d sorted, %d unchanged, %d would sort, %d skipped, %d failed",
		s.Sorted, s.Unchanged, s.WouldSort, s.Skipped, s.Errors)
	if styled {
		line = summaryStyle(s).Render(line)
	}
	fmt.Fprintln(out, line)
}

// printOutputs writes each rendered manifest to stdout. With more than one
// file, each manifest is preceded by a "==> path <==" line.
func printOutputs(cmd *cobra.Command, results []runner.Result) {
	out := cmd.OutOrStdout()
	multi := len(results) > 1
	for _, r := range results {
		if r.Output == nil {
			continue
		}
		if multi {
			fmt.Fprintf(out, "==> %s <==\n", r.Path)
		}
		out.Write(r.Output)
	}
}

func summaryStyle(s runner.Summary) lipgloss.Style {
	switch {
	case s.Errors > 0:
		return styles.OutcomeStyle(history.OutcomeError)
	case s.WouldSort > 0:
		return styles.OutcomeStyle(history.OutcomeWouldSort)
	case s.Sorted > 0:
		return styles.OutcomeStyle(history.OutcomeSorted)
	default:
		return styles.MutedText
	}
}
