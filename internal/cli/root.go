package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/healthgain/internal/buildinfo"
	"github.com/aalvaropc/healthgain/internal/infra/fsworkspace"
	"github.com/aalvaropc/healthgain/internal/infra/logger"
	"github.com/aalvaropc/healthgain/internal/infra/workspacefinder"
	"github.com/aalvaropc/healthgain/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var lang string

	cmd := &cobra.Command{
		Use:          "healthgain",
		Short:        "healthgain — estimate healthy-life gain from drinking less (demo, not medical advice)",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			locale, err := ws.locale(lang)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Catalog:              ws.catalog,
				Estimator:            ws.estimator(),
				Locale:               locale,
				WorkspaceRoot:        ws.root,
				WorkspaceFound:       ws.found,
				ExportsDir:           ws.store().Dir(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .healthgain/logs/healthgain.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Display language: en|no (defaults to workspace setting)")

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.AddCommand(
		estimateCmd(),
		serveCmd(),
		initCmd(),
		localesCmd(),
		versionCmd(),
	)
	return cmd
}

// debugFlag reads the persistent --debug flag from any subcommand.
func debugFlag(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return false
	}
	return v
}
