package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/healthgain/internal/infra/fsworkspace"
	"github.com/aalvaropc/healthgain/internal/infra/workspacefinder"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a healthgain workspace (config, exports dir, .gitignore entries)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			abs, err := uc.Execute(root, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready: %s\n", abs)
			fmt.Fprintf(cmd.OutOrStdout(), "Config:          %s\n", workspacefinder.ConfigFile)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to initialize (defaults to the current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing healthgain.yaml")
	return c
}
