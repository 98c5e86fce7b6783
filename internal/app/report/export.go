package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/aalvaropc/healthgain/internal/domain"
)

const (
	SummaryFileName = "ai_health_gain_result.txt"
	CSVFileName     = "ai_health_gain_result.csv"
)

// WriteSummary writes the plain-text summary offered for download.
func WriteSummary(w io.Writer, ts domain.TemplateSet, res domain.GainResult, now time.Time) error {
	headline, err := Headline(ts, res)
	if err != nil {
		return err
	}
	d := res.Detail()
	in := res.Input

	_, err = fmt.Fprintf(w, `AI Health Gain – Demo Result
Time: %s

%s

Inputs:
- Age: %d
- Sex: %s
- Drinking days (now→goal): %d → %d
- Drinks per occasion: %d
- Years drinking: %d

Model (demo):
- RR now / after: %s / %s
- Healthy life gain: %d months
`,
		Timestamp(now),
		headline,
		d.Age,
		d.Sex,
		in.DrinkingDaysNow, in.TargetDays,
		in.DrinksPerOccasion,
		in.YearsDrinking,
		FormatFloat(d.RRNow), FormatFloat(d.RRAfter),
		d.GainMonths,
	)
	return err
}

// WriteCSV writes a header and a single row with the detail fields.
func WriteCSV(w io.Writer, res domain.GainResult) error {
	d := res.Detail()

	cw := csv.NewWriter(w)
	if err := cw.Write(domain.DetailColumns); err != nil {
		return err
	}
	row := []string{
		strconv.Itoa(d.Age),
		d.Sex,
		strconv.Itoa(d.NowDrinksPerWeek),
		strconv.Itoa(d.AfterDrinksPerWeek),
		FormatFloat(d.RRNow),
		FormatFloat(d.RRAfter),
		FormatFloat(d.GainYears),
		strconv.Itoa(d.GainMonths),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the detail record as indented JSON.
func WriteJSON(w io.Writer, res domain.GainResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Detail())
}

// Exports renders the files saved next to a stored artifact.
func Exports(ts domain.TemplateSet, res domain.GainResult, now time.Time) ([]domain.ExportFile, error) {
	var txt, csvBuf bytes.Buffer
	if err := WriteSummary(&txt, ts, res, now); err != nil {
		return nil, err
	}
	if err := WriteCSV(&csvBuf, res); err != nil {
		return nil, err
	}
	return []domain.ExportFile{
		{Ext: ".txt", Body: txt.Bytes()},
		{Ext: ".csv", Body: csvBuf.Bytes()},
	}, nil
}

// Timestamp formats t in UTC with microseconds and a trailing Z.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

// FormatFloat prints the shortest representation, keeping a ".0" on whole numbers
// so tabular exports always show a decimal column.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
