package domain

import (
	"fmt"
	"strings"
)

// Locale identifies a display language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleNO Locale = "no"
)

// SupportedLocales lists locales in toggle order.
var SupportedLocales = []Locale{LocaleEN, LocaleNO}

// ParseLocale accepts a locale code case-insensitively, including common aliases.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "eng", "english":
		return LocaleEN, nil
	case "no", "nb", "nn", "nor", "norsk":
		return LocaleNO, nil
	default:
		return "", &OpError{
			Op:   "locale.parse",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("unsupported locale %q (expected en|no): %w", s, ErrInvalidArgument),
		}
	}
}

// Toggle returns the next supported locale.
func (l Locale) Toggle() Locale {
	for i, s := range SupportedLocales {
		if s == l {
			return SupportedLocales[(i+1)%len(SupportedLocales)]
		}
	}
	return LocaleEN
}

// Label is the short uppercase form shown in language switches.
func (l Locale) Label() string {
	return strings.ToUpper(string(l))
}

// TemplateSet holds every user-facing string for one locale.
// Headline uses {now}, {goal} and {months}; TipGoodStart uses {x} and {y}.
type TemplateSet struct {
	Locale Locale

	Title    string
	Subtitle string

	Age               string
	Sex               string
	Male              string
	Female            string
	YearsDrinking     string
	DaysNow           string
	DrinksPerOccasion string
	DaysGoal          string
	Calculate         string

	YourGain    string
	LifespanBar string

	TipsHeader   string
	TipGoodStart string
	TipReduceOne string
	TipSupport   string
	TipTryReduce string

	SeeDetails  string
	SaveResult  string
	DownloadTXT string
	DownloadCSV string
	Disclaimer  string

	Headline string
}
