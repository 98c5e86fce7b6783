package domain

import (
	"math"
	"strconv"
)

// Input ranges accepted by the estimator. The form widgets enforce the same bounds.
const (
	MinAge               = 15
	MaxAge               = 90
	MaxDaysPerWeek       = 7
	MaxDrinksPerOccasion = 10
	MaxYearsDrinking     = 60
)

// GainInput holds the six values collected by the form.
type GainInput struct {
	Age               int    `json:"age"`
	Sex               string `json:"sex"`
	DrinkingDaysNow   int    `json:"drinking_days_now"`
	DrinksPerOccasion int    `json:"drinks_per_occasion"`
	YearsDrinking     int    `json:"years_drinking"`
	TargetDays        int    `json:"target_days"`
}

// DefaultGainInput returns the values the form starts with.
func DefaultGainInput() GainInput {
	return GainInput{
		Age:               28,
		Sex:               "Male",
		DrinkingDaysNow:   4,
		DrinksPerOccasion: 2,
		YearsDrinking:     5,
		TargetDays:        2,
	}
}

// Validate returns an *OpError of kind KindInvalidArgument for the first field
// outside its documented range.
func (in GainInput) Validate() error {
	checks := []FieldError{
		{Field: "age", Value: in.Age, Min: MinAge, Max: MaxAge},
		{Field: "drinking_days_now", Value: in.DrinkingDaysNow, Min: 0, Max: MaxDaysPerWeek},
		{Field: "drinks_per_occasion", Value: in.DrinksPerOccasion, Min: 0, Max: MaxDrinksPerOccasion},
		{Field: "years_drinking", Value: in.YearsDrinking, Min: 0, Max: MaxYearsDrinking},
		{Field: "target_days", Value: in.TargetDays, Min: 0, Max: MaxDaysPerWeek},
	}
	for i := range checks {
		c := checks[i]
		if c.Value < c.Min || c.Value > c.Max {
			return &OpError{
				Op:   "gain.validate",
				Kind: KindInvalidArgument,
				Err:  &c,
			}
		}
	}
	return nil
}

// IsReduction reports whether the goal has fewer drinking days than today.
func (in GainInput) IsReduction() bool {
	return in.TargetDays < in.DrinkingDaysNow
}

// GainResult is the estimator output for one submission. It is never mutated
// after creation.
type GainResult struct {
	Input GainInput `json:"input"`

	DrinksPerWeekNow   int     `json:"drinks_per_week_now"`
	DrinksPerWeekAfter int     `json:"drinks_per_week_after"`
	RelativeRiskNow    float64 `json:"relative_risk_now"`
	RelativeRiskAfter  float64 `json:"relative_risk_after"`
	GainYears          float64 `json:"gain_years"`
	GainMonths         int     `json:"gain_months"`
}

// Detail is the rounded record shown in the details view and written to exports.
type Detail struct {
	Age                int     `json:"age"`
	Sex                string  `json:"sex"`
	NowDrinksPerWeek   int     `json:"now_drinks_per_week"`
	AfterDrinksPerWeek int     `json:"after_drinks_per_week"`
	RRNow              float64 `json:"rr_now"`
	RRAfter            float64 `json:"rr_after"`
	GainYears          float64 `json:"gain_years"`
	GainMonths         int     `json:"gain_months"`
}

// DetailColumns is the column order used by tabular exports.
var DetailColumns = []string{
	"age",
	"sex",
	"now_drinks_per_week",
	"after_drinks_per_week",
	"rr_now",
	"rr_after",
	"gain_years",
	"gain_months",
}

func (r GainResult) Detail() Detail {
	return Detail{
		Age:                r.Input.Age,
		Sex:                r.Input.Sex,
		NowDrinksPerWeek:   r.DrinksPerWeekNow,
		AfterDrinksPerWeek: r.DrinksPerWeekAfter,
		RRNow:              RoundTo(r.RelativeRiskNow, 3),
		RRAfter:            RoundTo(r.RelativeRiskAfter, 3),
		GainYears:          RoundTo(r.GainYears, 2),
		GainMonths:         r.GainMonths,
	}
}

// RoundTo rounds x to the given number of decimal places. The exact binary
// value is rounded, ties to even, so 1.9949999999999999 gives 1.99 even
// though x*100 is exactly 199.5 in float64.
func RoundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
