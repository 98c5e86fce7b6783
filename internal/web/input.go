package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/aalvaropc/healthgain/internal/domain"
)

// Query/form parameter names, shared by the HTML form and the API.
const (
	paramLang   = "lang"
	paramAge    = "age"
	paramSex    = "sex"
	paramNow    = "days_now"
	paramDrinks = "drinks"
	paramYears  = "years"
	paramTarget = "target"
)

// parseInput reads a GainInput from form or query values.
// Absent fields take the form defaults; malformed numbers are invalid_argument.
func parseInput(v url.Values, ts domain.TemplateSet) (domain.GainInput, error) {
	in := domain.DefaultGainInput()
	in.Sex = ts.Male

	fields := []struct {
		name string
		dst  *int
	}{
		{paramAge, &in.Age},
		{paramNow, &in.DrinkingDaysNow},
		{paramDrinks, &in.DrinksPerOccasion},
		{paramYears, &in.YearsDrinking},
		{paramTarget, &in.TargetDays},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(v.Get(f.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.GainInput{}, &domain.OpError{
				Op:   "web.parse",
				Kind: domain.KindInvalidArgument,
				Path: f.name,
				Err:  err,
			}
		}
		*f.dst = n
	}

	if s := v.Get(paramSex); s != "" {
		in.Sex = s
	}
	return in, nil
}

// localeFrom falls back to def for an absent lang parameter.
func localeFrom(v url.Values, def domain.Locale) (domain.Locale, error) {
	raw := strings.TrimSpace(v.Get(paramLang))
	if raw == "" {
		return def, nil
	}
	return domain.ParseLocale(raw)
}
