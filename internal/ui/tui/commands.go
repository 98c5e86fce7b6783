package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

const estimateTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdEstimate(deps Deps, in domain.GainInput, locale domain.Locale, save bool) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if deps.Estimator == nil {
			return estimateDoneMsg{err: errors.New("Estimator is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), estimateTimeout)
		defer cancel()

		est, err := deps.Estimator.Execute(ctx, in, usecase.EstimateOptions{Locale: locale, Save: save})
		if err != nil {
			log.Warn("tui.estimate.failed", "save", save, "err", err)
		} else if deps.Debug {
			log.Debug("tui.estimate.ok", "save", save, "gain_months", est.Result.GainMonths, "saved_id", est.SavedID)
		}
		return estimateDoneMsg{est: est, saved: save && err == nil && est.SavedID != "", err: err}
	}
}
