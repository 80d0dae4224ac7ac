package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage sort history",
		Long: "View the local record of sorted manifests and prune old entries.\n\n" +
			"History is stored locally in ~/.config/pkgsort/pkgsort.db. A file whose\n" +
			"content matches its last clean run is skipped by \"pkgsort sort\".",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
