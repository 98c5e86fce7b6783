package tui

import "github.com/aalvaropc/healthgain/internal/usecase"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

// estimateDoneMsg carries a rendered estimate. On a failed save est is still set.
type estimateDoneMsg struct {
	est   usecase.Estimate
	saved bool
	err   error
}
