package config

import (
	"nathanbeddoewebdev/pkgsort/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pkgsort configuration",
		Long: "View and modify persistent pkgsort settings.\n\n" +
			"Configuration is stored at ~/.config/pkgsort/config.json.\n" +
			"Flags passed to \"pkgsort sort\" take precedence over these settings.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
