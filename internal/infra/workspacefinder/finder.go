package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
)

// Finder locates a workspace root by searching for healthgain.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "healthgain.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve returns the workspace root and its config. Without a workspace it
// falls back to fallbackDir and the default config, with found=false.
func Resolve(locator ports.WorkspaceLocator, startDir, fallbackDir string) (root string, cfg domain.Config, found bool, err error) {
	root, ferr := locator.FindRoot(startDir)
	if ferr != nil {
		if domain.IsKind(ferr, domain.KindNotFound) {
			return fallbackDir, domain.DefaultConfig(), false, nil
		}
		return "", domain.Config{}, false, ferr
	}

	cfg, err = LoadConfig(root)
	if err != nil {
		return "", domain.Config{}, false, err
	}
	return root, cfg, true, nil
}
