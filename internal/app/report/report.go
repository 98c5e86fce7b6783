// Package report turns a GainResult into the headline, tips, progress value and
// downloadable summaries. Every function takes the template set explicitly.
package report

import (
	"strconv"

	"github.com/aalvaropc/healthgain/internal/app/template"
	"github.com/aalvaropc/healthgain/internal/domain"
)

// ProgressCapMonths is the gain, in months, that fills the progress bar.
const ProgressCapMonths = 36

// Headline renders the one-sentence result for the given locale.
func Headline(ts domain.TemplateSet, res domain.GainResult) (string, error) {
	return template.RenderString(ts.Headline, map[string]string{
		"now":    strconv.Itoa(res.Input.DrinkingDaysNow),
		"goal":   strconv.Itoa(res.Input.TargetDays),
		"months": strconv.Itoa(res.GainMonths),
	})
}

// Progress returns the progress bar fill in [0,1].
func Progress(res domain.GainResult) float64 {
	m := res.GainMonths
	if m > ProgressCapMonths {
		m = ProgressCapMonths
	}
	if m < 0 {
		m = 0
	}
	return float64(m) / ProgressCapMonths
}

// Tips returns the advice lines shown under the result.
func Tips(ts domain.TemplateSet, res domain.GainResult) ([]string, error) {
	in := res.Input
	if !in.IsReduction() {
		return []string{ts.TipTryReduce}, nil
	}

	first, err := template.RenderString(ts.TipGoodStart, map[string]string{
		"x": strconv.Itoa(in.DrinkingDaysNow),
		"y": strconv.Itoa(in.TargetDays),
	})
	if err != nil {
		return nil, err
	}

	tips := []string{first}
	if in.DrinkingDaysNow-in.TargetDays >= 2 {
		tips = append(tips, ts.TipReduceOne)
	}
	tips = append(tips, ts.TipSupport)
	return tips, nil
}

// SexLabel returns the localized label matching the selection.
func SexLabel(ts domain.TemplateSet, female bool) string {
	if female {
		return ts.Female
	}
	return ts.Male
}
