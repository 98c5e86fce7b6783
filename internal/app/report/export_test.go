package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/healthgain/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	res := mustEstimate(t, domain.DefaultGainInput())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}

	want := "age,sex,now_drinks_per_week,after_drinks_per_week,rr_now,rr_after,gain_years,gain_months\n" +
		"28,Male,8,4,1.185,1.105,0.6,7\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV_ZeroGainKeepsDecimal(t *testing.T) {
	in := domain.DefaultGainInput()
	in.TargetDays = in.DrinkingDaysNow
	res := mustEstimate(t, in)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[1], ",0.0,0") {
		t.Fatalf("expected gain_years 0.0, got %q", lines[1])
	}
}

func TestWriteCSV_QuotesLabels(t *testing.T) {
	in := domain.DefaultGainInput()
	in.Sex = "Male, other"
	res := mustEstimate(t, in)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Male, other"`) {
		t.Fatalf("expected quoted label, got %q", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	res := mustEstimate(t, domain.DefaultGainInput())
	now := time.Date(2026, 3, 4, 5, 6, 7, 123456000, time.UTC)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, mustSet(t, domain.LocaleEN), res, now); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"AI Health Gain – Demo Result\n",
		"Time: 2026-03-04T05:06:07.123456Z\n",
		"you could gain about +7 months",
		"- Age: 28\n",
		"- Sex: Male\n",
		"- Drinking days (now→goal): 4 → 2\n",
		"- Drinks per occasion: 2\n",
		"- Years drinking: 5\n",
		"- RR now / after: 1.185 / 1.105\n",
		"- Healthy life gain: 7 months\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	res := mustEstimate(t, domain.DefaultGainInput())

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range domain.DetailColumns {
		if _, ok := got[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if got["gain_months"] != float64(7) {
		t.Fatalf("expected gain_months 7, got %v", got["gain_months"])
	}
}

func TestExports(t *testing.T) {
	res := mustEstimate(t, domain.DefaultGainInput())
	files, err := Exports(mustSet(t, domain.LocaleEN), res, time.Unix(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0].Ext != ".txt" || files[1].Ext != ".csv" {
		t.Fatalf("unexpected exports %+v", files)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		0:     "0.0",
		3:     "3.0",
		1.185: "1.185",
		0.6:   "0.6",
	}
	for in, want := range cases {
		if got := FormatFloat(in); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
