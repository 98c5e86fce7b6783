package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func localesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "locales",
		Short: "Inspect the bundled display languages",
	}

	c.AddCommand(localesListCmd())
	return c
}

func localesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available locales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Default: %s\n\n", ws.cfg.Defaults.Locale)

			for _, l := range ws.catalog.Locales() {
				ts, err := ws.catalog.Lookup(l)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "- %s  %s (%s)\n", l, l.Label(), ts.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
