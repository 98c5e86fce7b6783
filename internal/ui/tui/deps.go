package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

// Estimator is the slice of usecase.EstimateGain the TUI needs.
type Estimator interface {
	Execute(ctx context.Context, in domain.GainInput, opts usecase.EstimateOptions) (usecase.Estimate, error)
}

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Catalog   ports.LocaleCatalog
	Estimator Estimator
	Locale    domain.Locale

	WorkspaceRoot  string
	WorkspaceFound bool
	ExportsDir     string

	Logger *slog.Logger
	Debug  bool
}
