package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/infra/locales"
	"github.com/aalvaropc/healthgain/internal/infra/logger"
	"github.com/aalvaropc/healthgain/internal/infra/resultstore"
	"github.com/aalvaropc/healthgain/internal/infra/workspacefinder"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	catalog *locales.Catalog
}

// loadWorkspace resolves the workspace from the flag or the working directory.
// Missing workspaces are not an error: the cwd and default config are used instead.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	start, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	root, cfg, found, err := workspacefinder.Resolve(workspacefinder.NewFinder(), start, start)
	if err != nil {
		return nil, err
	}

	catalog, err := locales.Default()
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		catalog: catalog,
	}, nil
}

// store is built after logger setup so index failures reach the log.
func (ws *workspaceCtx) store() *resultstore.FileStore {
	return resultstore.NewFileStore(ws.root, ws.cfg,
		resultstore.WithIndex(ws.cfg.Exports.Index),
		resultstore.WithLogger(logger.L()),
	)
}

func (ws *workspaceCtx) estimator() *usecase.EstimateGain {
	return usecase.NewEstimateGain(ws.catalog, ws.store(), logger.L())
}

// locale picks the flag value when set, otherwise the workspace default.
func (ws *workspaceCtx) locale(flag string) (domain.Locale, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Defaults.Locale, nil
	}
	return domain.ParseLocale(flag)
}

// setupCommandLogger logs to the workspace log file when a workspace exists.
// Outside a workspace only --debug enables logging, to stderr.
func setupCommandLogger(ws *workspaceCtx, debug bool) func() error {
	if !ws.found && !debug {
		return nil
	}
	cleanup, _ := logger.Setup(logger.Config{
		Root:    ws.root,
		Debug:   debug,
		Console: !ws.found,
	})
	return cleanup
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
