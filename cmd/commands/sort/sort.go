package sort

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"nathanbeddoewebdev/pkgsort/internal/config"
	"nathanbeddoewebdev/pkgsort/internal/groups"
	"nathanbeddoewebdev/pkgsort/internal/history"
	"nathanbeddoewebdev/pkgsort/internal/logging"
	"nathanbeddoewebdev/pkgsort/internal/normalize"
	"nathanbeddoewebdev/pkgsort/internal/runner"
	"nathanbeddoewebdev/pkgsort/internal/tui"
	"nathanbeddoewebdev/pkgsort/internal/util"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// NewCommand returns the "sort" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [paths...]",
		Short: "Sort the keys of package.json manifests",
		Long: `Reorder the keys of one or more JSON manifests.

Each path may be a manifest file or a directory containing a package.json.
With no paths, the package.json in the current directory is sorted.

Keys are arranged by the active group layout (see "pkgsort groups").
Keys no group recognizes are kept and placed first.

Examples:
  pkgsort sort
  pkgsort sort packages/*/package.json
  pkgsort sort --check                 # exit non-zero if a file would change
  pkgsort sort --dry-run app           # print the sorted manifest
  pkgsort sort --groups layout.yaml --unknown preserve`,
		RunE:         runSort,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("check", false, "Report files that are not sorted without writing them")
	cmd.Flags().Bool("dry-run", false, "Print sorted manifests to stdout instead of writing them")
	cmd.Flags().Bool("interactive", false, "Confirm each write")
	cmd.Flags().String("groups", "", "YAML group layout (overrides the groups-file setting)")
	cmd.Flags().String("unknown", "", "Order of unrecognized keys: alphabetical or preserve")
	cmd.Flags().String("indent", "", "Indent for written files: tab or a number of spaces")
	cmd.Flags().Bool("no-history", false, "Do not read or record run history")
	cmd.Flags().Int("concurrency", 0, "Maximum files processed at once (default: number of CPUs)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	cmd.MarkFlagsMutuallyExclusive("check", "dry-run", "interactive")

	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w (fix it with \"pkgsort config set\")", err)
	}
	logger := newLogger(cmd, cfg)

	opts, err := buildOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}

	if useHistory(cmd, cfg) {
		repo, err := history.Open()
		if err != nil {
			logger.Warn("history unavailable", "error", err)
		} else {
			defer repo.Close()
			opts.History = repo
		}
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	results, err := runner.New(opts).Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if output == "json" {
		printResultsJSON(cmd, results)
	} else {
		if opts.DryRun {
			printOutputs(cmd, results)
		}
		printResults(cmd, results, opts.DryRun)
	}

	summary := runner.Summarize(results)
	if summary.Failed(opts.Check) {
		return failure(summary)
	}
	return nil
}

func buildOptions(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (runner.Options, error) {
	check, _ := cmd.Flags().GetBool("check")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	interactive, _ := cmd.Flags().GetBool("interactive")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency < 0 {
		return runner.Options{}, fmt.Errorf("concurrency must not be negative")
	}

	layout, err := groups.Resolve(flagOr(cmd, "groups", cfg.GroupsFile))
	if err != nil {
		return runner.Options{}, err
	}
	built, err := layout.Build()
	if err != nil {
		return runner.Options{}, err
	}
	// Sort method names are not visible through the built groups.
	settings, err := layout.YAML()
	if err != nil {
		return runner.Options{}, err
	}

	mode, err := normalize.ParseUnknownMode(flagOr(cmd, "unknown", cfg.UnknownKeys))
	if err != nil {
		return runner.Options{}, err
	}

	indent, err := util.ParseIndent(flagOr(cmd, "indent", cfg.Indent))
	if err != nil {
		return runner.Options{}, err
	}

	opts := runner.Options{
		Normalizer:  normalize.New(built, mode, logger),
		Indent:      indent,
		Settings:    string(settings),
		Check:       check,
		DryRun:      dryRun,
		Concurrency: concurrency,
		Logger:      logger,
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return runner.Options{}, fmt.Errorf("--interactive requires a terminal")
		}
		opts.Confirm = tui.ConfirmWrite
	}

	return opts, nil
}

// flagOr returns the flag value when it was set on the command line, and
// fallback otherwise.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return strings.TrimSpace(v)
	}
	return fallback
}

func useHistory(cmd *cobra.Command, cfg *config.Config) bool {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return cfg.HistoryEnabled() && !noHistory && !dryRun
}

// newLogger builds the diagnostic logger. The --log-level flag, inherited
// from the root command, takes precedence over the log-level setting.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	raw := cfg.LogLevel
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		raw = f.Value.String()
	}
	level, _ := logging.ParseLevel(raw)
	return logging.New(cmd.ErrOrStderr(), level)
}

func failure(s runner.Summary) error {
	var parts []string
	if s.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) failed", s.Errors))
	}
	if s.WouldSort > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) not sorted", s.WouldSort))
	}
	return fmt.Errorf("%s", strings.Join(parts, ", "))
}
