package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/healthgain/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func TestInitWorkspace_PassesAbsoluteRoot(t *testing.T) {
	fi := &fakeInitializer{}
	uc := NewInitWorkspace(fi)

	tmp := t.TempDir()
	root, err := uc.Execute(tmp, true)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(root) || fi.spec.Root != root {
		t.Fatalf("expected absolute root passed through, got %q / %q", root, fi.spec.Root)
	}
	if !fi.force {
		t.Fatalf("expected force flag to pass through")
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	uc := NewInitWorkspace(&fakeInitializer{})
	_, err := uc.Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	uc := NewInitWorkspace(&fakeInitializer{err: boom})
	if _, err := uc.Execute(t.TempDir(), false); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
