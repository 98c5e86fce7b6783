package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/infra/locales"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleEstimate(t *testing.T, locale domain.Locale) usecase.Estimate {
	t.Helper()
	cat, err := locales.Default()
	if err != nil {
		t.Fatalf("locales: %v", err)
	}
	uc := usecase.NewEstimateGain(cat, nil, nil)
	in := domain.DefaultGainInput()
	est, err := uc.Execute(t.Context(), in, usecase.EstimateOptions{Locale: locale})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	return est
}

// --- printEstimate ---

func TestPrintEstimate_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printEstimate(&buf, sampleEstimate(t, domain.LocaleEN), "json", time.Now()); err != nil {
		t.Fatalf("printEstimate: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["gain_months"] != float64(7) {
		t.Errorf("expected gain_months=7, got %v", got["gain_months"])
	}
	if got["sex"] != "Male" {
		t.Errorf("expected sex=Male, got %v", got["sex"])
	}
}

func TestPrintEstimate_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := printEstimate(&buf, sampleEstimate(t, domain.LocaleEN), "csv", time.Now()); err != nil {
		t.Fatalf("printEstimate: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[1] != "28,Male,8,4,1.185,1.105,0.6,7" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestPrintEstimate_TXT(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := printEstimate(&buf, sampleEstimate(t, domain.LocaleEN), "txt", now); err != nil {
		t.Fatalf("printEstimate: %v", err)
	}
	if !strings.Contains(buf.String(), "Time: 2026-03-01T10:00:00.000000Z") {
		t.Errorf("expected timestamp line, got:\n%s", buf.String())
	}
}

func TestPrintEstimate_Pretty(t *testing.T) {
	for _, format := range []string{"pretty", ""} {
		var buf bytes.Buffer
		est := sampleEstimate(t, domain.LocaleEN)
		est.SavedID = "20260301T100000Z_gain-7m_en"
		if err := printEstimate(&buf, est, format, time.Now()); err != nil {
			t.Fatalf("printEstimate(%q): %v", format, err)
		}
		out := buf.String()
		if !strings.Contains(out, est.Headline) {
			t.Errorf("format %q: missing headline", format)
		}
		if !strings.Contains(out, "7/36") {
			t.Errorf("format %q: missing progress count", format)
		}
		if !strings.Contains(out, "Saved: 20260301T100000Z_gain-7m_en") {
			t.Errorf("format %q: missing saved id", format)
		}
		for _, tip := range est.Tips {
			if !strings.Contains(out, tip) {
				t.Errorf("format %q: missing tip %q", format, tip)
			}
		}
	}
}

func TestPrintEstimate_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printEstimate(&buf, sampleEstimate(t, domain.LocaleEN), "xml", time.Now())
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error should mention the format, got: %v", err)
	}
}

func TestTextBar(t *testing.T) {
	cases := []struct {
		fraction float64
		filled   int
	}{
		{0, 0},
		{-1, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
	}
	for _, c := range cases {
		bar := textBar(c.fraction, 10)
		if got := strings.Count(bar, "█"); got != c.filled {
			t.Errorf("textBar(%v) filled=%d, want %d (%s)", c.fraction, got, c.filled, bar)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 10 {
			t.Errorf("textBar(%v) width=%d, want 10", c.fraction, got)
		}
	}
}

// --- commands ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]bool{
		"estimate": false,
		"serve":    false,
		"init":     false,
		"locales":  false,
		"version":  false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestRootCmd_DebugFlag(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Fatal("expected persistent --debug flag")
	}
}

func TestEstimateCmd_Flags(t *testing.T) {
	cmd := estimateCmd()
	defaults := map[string]string{
		"age":      "28",
		"sex":      "",
		"days-now": "4",
		"drinks":   "2",
		"years":    "5",
		"target":   "2",
		"format":   "pretty",
		"save":     "false",
	}
	for name, def := range defaults {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("expected --%s flag", name)
			continue
		}
		if f.DefValue != def {
			t.Errorf("--%s default = %q, want %q", name, f.DefValue, def)
		}
	}
	for _, name := range []string{"lang", "query", "workspace"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := serveCmd()
	for _, name := range []string{"addr", "lang", "workspace"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if f := cmd.Flags().Lookup("path"); f == nil {
		t.Error("expected --path flag")
	}
	if f := cmd.Flags().Lookup("force"); f == nil {
		t.Error("expected --force flag")
	}
}

func TestEstimateCmd_CSVOutsideWorkspace(t *testing.T) {
	tmp := t.TempDir()
	out, err := runRoot(t, "estimate", "-w", tmp, "--format", "csv")
	if err != nil {
		t.Fatalf("estimate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "28,Male,8,4,1.185,1.105,0.6,7") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEstimateCmd_NorwegianDefaultSex(t *testing.T) {
	tmp := t.TempDir()
	out, err := runRoot(t, "estimate", "-w", tmp, "--lang", "no", "--query", "$.sex")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if strings.TrimSpace(out) != "Mann" {
		t.Fatalf("expected Mann, got %q", out)
	}
}

func TestEstimateCmd_Query(t *testing.T) {
	tmp := t.TempDir()
	out, err := runRoot(t, "estimate", "-w", tmp, "--days-now", "7", "--drinks", "6", "--years", "20", "--target", "0", "--query", "$.gain_months")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if strings.TrimSpace(out) != "36" {
		t.Fatalf("expected clamped 36 months, got %q", out)
	}
}

func TestEstimateCmd_InvalidInput(t *testing.T) {
	tmp := t.TempDir()
	_, err := runRoot(t, "estimate", "-w", tmp, "--age", "14")
	if err == nil {
		t.Fatal("expected error for age below range")
	}
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestEstimateCmd_UnknownLang(t *testing.T) {
	tmp := t.TempDir()
	if _, err := runRoot(t, "estimate", "-w", tmp, "--lang", "de"); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestInitThenEstimateSave(t *testing.T) {
	tmp := t.TempDir()

	out, err := runRoot(t, "init", "--path", tmp)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Workspace ready") {
		t.Fatalf("unexpected init output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(tmp, "healthgain.yaml")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	out, err = runRoot(t, "estimate", "-w", tmp, "--save")
	if err != nil {
		t.Fatalf("estimate --save: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved: ") {
		t.Fatalf("expected saved id in output:\n%s", out)
	}

	matches, err := filepath.Glob(filepath.Join(tmp, "exports", "*_gain-7m_en.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one csv export, got %v", matches)
	}
}

func TestLocalesList(t *testing.T) {
	out, err := runRoot(t, "locales", "list", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("locales list: %v", err)
	}
	for _, want := range []string{"Default: en", "- en", "- no"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "healthgain ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %s, got %s", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot("some/relative")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestResolveWorkspaceRoot_EmptyUsesWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := resolveWorkspaceRoot("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != wd {
		t.Errorf("expected %s, got %s", wd, got)
	}
}
