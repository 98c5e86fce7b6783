package locales

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/aalvaropc/healthgain/internal/domain"
)

func TestDefaultCatalogHasBothLocales(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	got := c.Locales()
	if len(got) != 2 || got[0] != domain.LocaleEN || got[1] != domain.LocaleNO {
		t.Fatalf("expected [en no], got %v", got)
	}

	en, err := c.Lookup(domain.LocaleEN)
	if err != nil {
		t.Fatal(err)
	}
	if en.Male != "Male" || en.Female != "Female" {
		t.Fatalf("unexpected english sex labels %q/%q", en.Male, en.Female)
	}
	if !strings.HasPrefix(en.Headline, "If you reduce your drinking days from {now} to {goal}") {
		t.Fatalf("unexpected english headline %q", en.Headline)
	}

	no, err := c.Lookup(domain.LocaleNO)
	if err != nil {
		t.Fatal(err)
	}
	if no.Male != "Mann" || no.Female != "Kvinne" {
		t.Fatalf("unexpected norwegian sex labels %q/%q", no.Male, no.Female)
	}
	if no.Locale != domain.LocaleNO {
		t.Fatalf("expected locale no, got %q", no.Locale)
	}
}

func TestLookupUnknownLocale(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Lookup(domain.Locale("de"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

const minimal = `
locale: "en"
title: "t"
form: {age: a, sex: s, male: m, female: f, years_drinking: y, days_now: d, drinks_per_occasion: o, days_goal: g, calculate: c}
result: {your_gain: g, lifespan_bar: b, headline: "{now} {goal} {months}"}
tips: {header: h, good_start: "{x} {y}", reduce_one: r, support: s, try_reduce: t}
export: {save_result: s}
disclaimer: d
`

func TestLoadMinimal(t *testing.T) {
	fsys := fstest.MapFS{"l/en.yaml": {Data: []byte(minimal)}}
	c, err := Load(fsys, "l")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Lookup(domain.LocaleEN); err != nil {
		t.Fatal(err)
	}
}

func TestLoadRejectsMissingPlaceholder(t *testing.T) {
	bad := strings.Replace(minimal, `headline: "{now} {goal} {months}"`, `headline: "{now} {goal}"`, 1)
	fsys := fstest.MapFS{"l/en.yaml": {Data: []byte(bad)}}

	_, err := Load(fsys, "l")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "{months}") {
		t.Fatalf("expected placeholder in error, got %v", err)
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	bad := strings.Replace(minimal, "disclaimer: d", "", 1)
	fsys := fstest.MapFS{"l/en.yaml": {Data: []byte(bad)}}

	_, err := Load(fsys, "l")
	if err == nil || !strings.Contains(err.Error(), "field disclaimer") {
		t.Fatalf("expected disclaimer error, got %v", err)
	}
}

func TestLoadRejectsDuplicateLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"l/a.yaml": {Data: []byte(minimal)},
		"l/b.yaml": {Data: []byte(minimal)},
	}
	_, err := Load(fsys, "l")
	if err == nil || !strings.Contains(err.Error(), "duplicate locale") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{"l/en.yaml": {Data: []byte("title: [unclosed")}}
	_, err := Load(fsys, "l")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"l/readme.txt": {Data: []byte("x")}}
	_, err := Load(fsys, "l")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
