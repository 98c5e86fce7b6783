package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/healthgain/internal/app/report"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderTips(est usecase.Estimate) string {
	var b strings.Builder
	b.WriteString(est.Set.TipsHeader)
	b.WriteString("\n")
	for _, tip := range est.Tips {
		b.WriteString("  • ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	return b.String()
}

func renderDetails(est usecase.Estimate) string {
	d := est.Result.Detail()

	var b strings.Builder
	rows := [][2]string{
		{"age", fmt.Sprint(d.Age)},
		{"sex", d.Sex},
		{"now_drinks_per_week", fmt.Sprint(d.NowDrinksPerWeek)},
		{"after_drinks_per_week", fmt.Sprint(d.AfterDrinksPerWeek)},
		{"rr_now", report.FormatFloat(d.RRNow)},
		{"rr_after", report.FormatFloat(d.RRAfter)},
		{"gain_years", report.FormatFloat(d.GainYears)},
		{"gain_months", fmt.Sprint(d.GainMonths)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-22s %s\n", r[0], r[1])
	}
	return b.String()
}
