package cmd

import (
	"os"

	cfgcmd "nathanbeddoewebdev/pkgsort/cmd/commands/config"
	"nathanbeddoewebdev/pkgsort/cmd/commands/groups"
	"nathanbeddoewebdev/pkgsort/cmd/commands/history"
	sortcmd "nathanbeddoewebdev/pkgsort/cmd/commands/sort"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "pkgsort",
		Short: "A CLI tool for sorting the keys of package.json manifests",
		Long: `pkgsort reorders the keys of JSON manifests such as package.json into a
conventional layout. Keys are arranged in groups (metadata, entry points,
scripts, dependencies, environment) and keys it does not recognize are
kept and moved to the top, so nothing is ever lost.

Quick start:
  pkgsort sort                     # Sort ./package.json
  pkgsort sort --check packages/*  # Fail if any manifest is unsorted
  pkgsort groups -o yaml           # Print the layout as an editable file
  pkgsort config get               # Browse settings`,
	}

	cmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn or error (overrides config)")

	cmd.AddCommand(sortcmd.NewCommand())
	cmd.AddCommand(groups.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(history.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
