// Package locales loads the user-facing string tables, one YAML file per locale.
package locales

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/healthgain/internal/app/template"
	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
)

//go:embed files/*.yaml
var embedded embed.FS

// Catalog maps a locale to its template set. It is read-only after construction
// and safe for concurrent use.
type Catalog struct {
	sets map[domain.Locale]domain.TemplateSet
}

var _ ports.LocaleCatalog = (*Catalog)(nil)

// Default loads the locales shipped with the binary.
func Default() (*Catalog, error) {
	return Load(embedded, "files")
}

// Load parses every *.yaml file in dir.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "locales.load",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	c := &Catalog{sets: map[domain.Locale]domain.TemplateSet{}}
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := path.Join(dir, e.Name())
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, &domain.OpError{Op: "locales.load", Kind: domain.KindExecution, Path: p, Err: err}
		}

		ts, err := parse(p, b)
		if err != nil {
			return nil, err
		}
		if _, dup := c.sets[ts.Locale]; dup {
			return nil, invalidField(p, "locale", fmt.Sprintf("duplicate locale %q", ts.Locale))
		}
		c.sets[ts.Locale] = ts
	}

	if len(c.sets) == 0 {
		return nil, &domain.OpError{
			Op:   "locales.load",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  fmt.Errorf("no locale files: %w", domain.ErrNotFound),
		}
	}
	return c, nil
}

// Lookup returns the template set for a locale.
func (c *Catalog) Lookup(l domain.Locale) (domain.TemplateSet, error) {
	ts, ok := c.sets[l]
	if !ok {
		return domain.TemplateSet{}, &domain.OpError{
			Op:   "locales.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("locale %q: %w", l, domain.ErrNotFound),
		}
	}
	return ts, nil
}

// Locales returns the available locale codes, sorted.
func (c *Catalog) Locales() []domain.Locale {
	out := make([]domain.Locale, 0, len(c.sets))
	for l := range c.sets {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func parse(p string, b []byte) (domain.TemplateSet, error) {
	var y yamlLocale
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.TemplateSet{}, &domain.OpError{
			Op:   "locales.parse",
			Kind: domain.KindInvalidConfig,
			Path: p,
			Err:  err,
		}
	}

	loc, err := domain.ParseLocale(y.Locale)
	if err != nil {
		return domain.TemplateSet{}, invalidField(p, "locale", err.Error())
	}

	ts := domain.TemplateSet{
		Locale:            loc,
		Title:             y.Title,
		Subtitle:          y.Subtitle,
		Age:               y.Form.Age,
		Sex:               y.Form.Sex,
		Male:              y.Form.Male,
		Female:            y.Form.Female,
		YearsDrinking:     y.Form.YearsDrinking,
		DaysNow:           y.Form.DaysNow,
		DrinksPerOccasion: y.Form.DrinksPerOccasion,
		DaysGoal:          y.Form.DaysGoal,
		Calculate:         y.Form.Calculate,
		YourGain:          y.Result.YourGain,
		LifespanBar:       y.Result.LifespanBar,
		Headline:          y.Result.Headline,
		TipsHeader:        y.Tips.Header,
		TipGoodStart:      y.Tips.GoodStart,
		TipReduceOne:      y.Tips.ReduceOne,
		TipSupport:        y.Tips.Support,
		TipTryReduce:      y.Tips.TryReduce,
		SeeDetails:        y.Export.SeeDetails,
		SaveResult:        y.Export.SaveResult,
		DownloadTXT:       y.Export.DownloadTXT,
		DownloadCSV:       y.Export.DownloadCSV,
		Disclaimer:        y.Disclaimer,
	}

	if err := validate(p, ts); err != nil {
		return domain.TemplateSet{}, err
	}
	return ts, nil
}

func validate(p string, ts domain.TemplateSet) error {
	required := []struct {
		field string
		value string
	}{
		{"title", ts.Title},
		{"form.age", ts.Age},
		{"form.sex", ts.Sex},
		{"form.male", ts.Male},
		{"form.female", ts.Female},
		{"form.years_drinking", ts.YearsDrinking},
		{"form.days_now", ts.DaysNow},
		{"form.drinks_per_occasion", ts.DrinksPerOccasion},
		{"form.days_goal", ts.DaysGoal},
		{"form.calculate", ts.Calculate},
		{"result.your_gain", ts.YourGain},
		{"result.lifespan_bar", ts.LifespanBar},
		{"result.headline", ts.Headline},
		{"tips.header", ts.TipsHeader},
		{"tips.good_start", ts.TipGoodStart},
		{"tips.reduce_one", ts.TipReduceOne},
		{"tips.support", ts.TipSupport},
		{"tips.try_reduce", ts.TipTryReduce},
		{"export.save_result", ts.SaveResult},
		{"disclaimer", ts.Disclaimer},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalidField(p, r.field, "value is required")
		}
	}

	if err := requirePlaceholders(p, "result.headline", ts.Headline, "now", "goal", "months"); err != nil {
		return err
	}
	return requirePlaceholders(p, "tips.good_start", ts.TipGoodStart, "x", "y")
}

func requirePlaceholders(p, field, value string, names ...string) error {
	have := map[string]bool{}
	for _, n := range template.Placeholders(value) {
		have[n] = true
	}
	for _, n := range names {
		if !have[n] {
			return invalidField(p, field, fmt.Sprintf("missing placeholder {%s}", n))
		}
	}
	return nil
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func invalidField(p, field, msg string) error {
	return &domain.OpError{
		Op:   "locales.parse",
		Kind: domain.KindInvalidConfig,
		Path: p,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
