// Package gain holds the placeholder health gain model.
//
// Parameters are placeholders, not derived from evidence. They must stay as they
// are so exported results match the published demo.
package gain

import (
	"math"
	"strings"

	"github.com/aalvaropc/healthgain/internal/domain"
)

const (
	coefVolume  = 0.02 // per weekly drink
	coefBinge   = 0.15
	coefYears   = 0.10 // per 20 years of drinking
	gainScale   = 8.0
	bingeDrinks = 5

	minRelativeRisk = 0.8
	maxGainYears    = 3.0

	femaleAdjust = 0.95
	minAgeAdjust = 0.6
)

var femaleTokens = map[string]struct{}{
	"female": {},
	"f":      {},
	"woman":  {},
	"kvinne": {},
}

// IsFemale reports whether a sex label selects the female multiplier.
// Anything not recognised, including an empty label, is treated as male.
func IsFemale(sex string) bool {
	_, ok := femaleTokens[strings.ToLower(sex)]
	return ok
}

// Estimate computes the healthy-life gain for moving from the current to the
// goal number of drinking days. Out-of-range input returns a KindInvalidArgument error.
func Estimate(in domain.GainInput) (domain.GainResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GainResult{}, err
	}

	dpwNow := in.DrinkingDaysNow * in.DrinksPerOccasion
	dpwAfter := in.TargetDays * in.DrinksPerOccasion

	// Only the number of days changes, so the binge flag is shared by both states.
	binge := 0.0
	if in.DrinksPerOccasion >= bingeDrinks {
		binge = 1
	}

	sexAdj := 1.0
	if IsFemale(in.Sex) {
		sexAdj = femaleAdjust
	}
	ageAdj := math.Max(minAgeAdjust, 1.2-float64(in.Age-20)*0.01)
	adjust := sexAdj * ageAdj

	rrNow := relativeRisk(dpwNow, binge, in.YearsDrinking)
	rrAfter := relativeRisk(dpwAfter, binge, in.YearsDrinking)

	years := gainScale * (rrNow - rrAfter) / rrNow * adjust
	years = math.Max(0, math.Min(years, maxGainYears))

	return domain.GainResult{
		Input:              in,
		DrinksPerWeekNow:   dpwNow,
		DrinksPerWeekAfter: dpwAfter,
		RelativeRiskNow:    rrNow,
		RelativeRiskAfter:  rrAfter,
		GainYears:          years,
		GainMonths:         Months(years),
	}, nil
}

// Months converts years to whole months, rounding half to even.
func Months(years float64) int {
	return int(math.RoundToEven(years * 12))
}

func relativeRisk(drinksPerWeek int, binge float64, yearsDrinking int) float64 {
	rr := 1 +
		coefVolume*float64(drinksPerWeek) +
		coefBinge*binge +
		coefYears*(float64(yearsDrinking)/20.0)
	return math.Max(rr, minRelativeRisk)
}
