package resultstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
)

const (
	defaultExportsDir = "exports"
	indexFile         = "index.jsonl"
)

// FileStore writes each estimate as <exports>/<timestamp>_<slug>.json plus one
// file per export, all sharing the same base name.
type FileStore struct {
	rootDir    string
	exportsDir string
	writeIndex bool
	now        func() time.Time
	log        *slog.Logger
}

type Option func(*FileStore)

// WithIndex enables a simple JSONL index: <exports>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *FileStore) { s.writeIndex = enabled }
}

// WithLogger reports non-fatal problems such as a failed index append.
func WithLogger(log *slog.Logger) Option {
	return func(s *FileStore) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

func NewFileStore(root string, cfg domain.Config, opts ...Option) *FileStore {
	dir := cfg.Paths.ExportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}

	s := &FileStore{
		rootDir:    root,
		exportsDir: dir,
		writeIndex: cfg.Exports.Index,
		now:        time.Now,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ResultStore = (*FileStore)(nil)

// Dir is the absolute-or-relative directory results are written to.
func (s *FileStore) Dir() string {
	if filepath.IsAbs(s.exportsDir) {
		return s.exportsDir
	}
	return filepath.Join(s.rootDir, s.exportsDir)
}

func (s *FileStore) Save(ctx context.Context, artifact domain.GainArtifact, files []domain.ExportFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "resultstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := artifact.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()
	artifact.CreatedAt = ts

	base := fmt.Sprintf("%s_gain-%dm", ts.Format("20060102T150405Z"), artifact.Detail.GainMonths)
	if slug := slugify(string(artifact.Locale)); slug != "" {
		base += "_" + slug
	}
	base = uniqueBase(dir, base)

	artifact.Files = artifact.Files[:0:0]
	for _, f := range files {
		name := base + f.Ext
		if err := writeAtomic(filepath.Join(dir, name), f.Body); err != nil {
			return "", err
		}
		artifact.Files = append(artifact.Files, name)
	}

	b, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "resultstore.marshal",
			Kind: domain.KindExecution,
			Path: base + ".json",
			Err:  err,
		}
	}
	if err := writeAtomic(filepath.Join(dir, base+".json"), b); err != nil {
		return "", err
	}

	if s.writeIndex {
		// The artifact is already on disk; a broken index must not fail the save.
		if err := s.appendIndex(dir, base, artifact); err != nil {
			s.log.Warn("resultstore.index.failed",
				"path", filepath.Join(dir, indexFile),
				"id", base,
				"err", err,
			)
		}
	}

	return base, nil
}

func (s *FileStore) appendIndex(dir, id string, a domain.GainArtifact) error {
	type idx struct {
		ID         string    `json:"id"`
		UUID       string    `json:"uuid"`
		File       string    `json:"file"`
		Locale     string    `json:"locale"`
		GainMonths int       `json:"gain_months"`
		CreatedAt  time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		UUID:       a.ID,
		File:       id + ".json",
		Locale:     string(a.Locale),
		GainMonths: a.Detail.GainMonths,
		CreatedAt:  a.CreatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// Atomic-ish write: tmp then rename.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "resultstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "resultstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// uniqueBase appends -2, -3... when two results land in the same second.
func uniqueBase(dir, base string) string {
	candidate := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
