package query

import (
	"strings"
	"testing"

	"github.com/aalvaropc/healthgain/internal/domain"
)

var detail = domain.Detail{
	Age:                28,
	Sex:                "Male",
	NowDrinksPerWeek:   8,
	AfterDrinksPerWeek: 4,
	RRNow:              1.185,
	RRAfter:            1.105,
	GainYears:          0.6,
	GainMonths:         7,
}

func TestSelect_Scalars(t *testing.T) {
	cases := map[string]string{
		"$.gain_months": "7",
		"$.sex":         "Male",
		"$.rr_now":      "1.185",
		"$.gain_years":  "0.6",
	}
	for expr, want := range cases {
		got, err := Select(detail, expr)
		if err != nil {
			t.Fatalf("Select(%q) error: %v", expr, err)
		}
		if got != want {
			t.Errorf("Select(%q) = %q, want %q", expr, got, want)
		}
	}
}

func TestSelect_Whole(t *testing.T) {
	got, err := Select(detail, "$")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"gain_months":7`) {
		t.Fatalf("expected json object, got %q", got)
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := Select(detail, "  "); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument for empty expr, got %v", err)
	}
	if _, err := Select(detail, "$.["); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument for malformed expr, got %v", err)
	}
}
