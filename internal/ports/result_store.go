package ports

import (
	"context"

	"github.com/aalvaropc/healthgain/internal/domain"
)

// ResultStore persists estimates and their exports.
type ResultStore interface {
	Save(ctx context.Context, artifact domain.GainArtifact, files []domain.ExportFile) (id string, err error)
}
