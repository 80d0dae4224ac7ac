package groups

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/pkgsort/internal/config"
	"nathanbeddoewebdev/pkgsort/internal/groups"

	"github.com/spf13/cobra"
)

// NewCommand returns the "groups" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Show the active key layout",
		Long: `Print the ordered groups of keys used by "pkgsort sort".

The layout comes from --groups, then the groups-file setting, and falls
back to the built-in package.json layout. The YAML output is a valid
groups file and can be used as a starting point for a custom layout.

Sort methods: ` + fmt.Sprint(groups.MethodNames()) + `

Examples:
  pkgsort groups
  pkgsort groups -o yaml > layout.yaml
  pkgsort groups --groups layout.yaml -o json`,
		Args:         cobra.NoArgs,
		RunE:         runGroups,
		SilenceUsage: true,
	}

	cmd.Flags().String("groups", "", "YAML group layout (overrides the groups-file setting)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table, json or yaml")

	return cmd
}

func runGroups(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	path, _ := cmd.Flags().GetString("groups")
	if !cmd.Flags().Changed("groups") {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.GroupsFile
	}

	layout, err := groups.Resolve(path)
	if err != nil {
		return err
	}

	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	case "yaml":
		data, err := layout.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "table":
		printLayout(cmd, layout)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}

func printLayout(cmd *cobra.Command, layout groups.Layout) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tKEY\tSORT")
	fmt.Fprintln(w, "-----\t---\t----")
	for _, g := range layout.Groups {
		for i, k := range g.Keys {
			group := ""
			if i == 0 {
				group = g.Name
			}
			method := k.Sort
			if method == "" {
				method = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", group, k.Name, method)
		}
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d group(s), %d key(s)\n", len(layout.Groups), layout.KeyCount())
}
