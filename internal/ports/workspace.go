package ports

import "github.com/aalvaropc/healthgain/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
