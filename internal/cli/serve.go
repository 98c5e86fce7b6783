package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/healthgain/internal/infra/logger"
	"github.com/aalvaropc/healthgain/internal/web"
)

func serveCmd() *cobra.Command {
	var workspace string
	var addr string
	var lang string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator as a small web form and JSON/CSV/TXT API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:    ws.root,
				Debug:   debugFlag(cmd),
				Console: !ws.found,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			locale, err := ws.locale(lang)
			if err != nil {
				return err
			}

			listen := strings.TrimSpace(addr)
			if listen == "" {
				listen = ws.cfg.Server.Addr
			}

			h := web.NewHandler(ws.catalog, ws.estimator(), locale, logger.L())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return web.Serve(ctx, listen, h.Router(), logger.L(), func(bound string) {
				fmt.Fprintf(out, "Listening on http://%s (Ctrl+C to stop)\n", bound)
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from healthgain.yaml)")
	c.Flags().StringVarP(&lang, "lang", "l", "", "Default page language: en|no")
	return c
}
