package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/healthgain/internal/app/report"
	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/usecase"
	"github.com/aalvaropc/healthgain/internal/usecase/query"
)

const textBarWidth = 30

func estimateCmd() *cobra.Command {
	var workspace string
	var lang string
	var format string
	var expr string
	var save bool

	def := domain.DefaultGainInput()
	in := def
	in.Sex = ""

	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate healthy-life gain from drinking on fewer days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			if cleanup := setupCommandLogger(ws, debugFlag(cmd)); cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			locale, err := ws.locale(lang)
			if err != nil {
				return err
			}
			ts, err := ws.catalog.Lookup(locale)
			if err != nil {
				return err
			}

			input := in
			if strings.TrimSpace(input.Sex) == "" {
				input.Sex = ts.Male
			}

			uc := ws.estimator()
			est, err := uc.Execute(cmd.Context(), input, usecase.EstimateOptions{
				Locale: locale,
				Save:   save,
			})
			// A failed save still carries a rendered estimate.
			if err != nil && est.Headline == "" {
				return err
			}
			saveErr := err

			out := cmd.OutOrStdout()
			if strings.TrimSpace(expr) != "" {
				v, qerr := query.Select(est.Result.Detail(), expr)
				if qerr != nil {
					return qerr
				}
				if _, werr := fmt.Fprintln(out, v); werr != nil {
					return werr
				}
			} else if perr := printEstimate(out, est, format, time.Now()); perr != nil {
				return perr
			}

			if saveErr != nil {
				return fmt.Errorf("result computed but not saved: %w", saveErr)
			}
			return nil
		},
	}

	c.Flags().IntVar(&in.Age, "age", def.Age, fmt.Sprintf("Age in years (%d-%d)", domain.MinAge, domain.MaxAge))
	c.Flags().StringVar(&in.Sex, "sex", "", "Sex label (female|f|woman|kvinne count as female; defaults to the locale's male label)")
	c.Flags().IntVar(&in.DrinkingDaysNow, "days-now", def.DrinkingDaysNow, "Drinking days per week now (0-7)")
	c.Flags().IntVar(&in.DrinksPerOccasion, "drinks", def.DrinksPerOccasion, "Drinks per occasion (0-10)")
	c.Flags().IntVar(&in.YearsDrinking, "years", def.YearsDrinking, "Years drinking at this level (0-60)")
	c.Flags().IntVar(&in.TargetDays, "target", def.TargetDays, "Target drinking days per week (0-7)")

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&lang, "lang", "l", "", "Output language: en|no (defaults to workspace setting)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|csv|txt")
	c.Flags().StringVarP(&expr, "query", "q", "", "JSONPath over the detail record, e.g. $.gain_months")
	c.Flags().BoolVar(&save, "save", false, "Save the result (json, txt, csv) under the exports dir")

	return c
}

func printEstimate(w io.Writer, est usecase.Estimate, format string, now time.Time) error {
	switch format {
	case "json":
		return report.WriteJSON(w, est.Result)
	case "csv":
		return report.WriteCSV(w, est.Result)
	case "txt":
		return report.WriteSummary(w, est.Set, est.Result, now)
	case "pretty", "":
		printPrettyEstimate(w, est)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|csv|txt)", format)
	}
}

func printPrettyEstimate(w io.Writer, est usecase.Estimate) {
	ts := est.Set
	d := est.Result.Detail()

	fmt.Fprintf(w, "%s\n", ts.Title)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", ts.YourGain, est.Headline)
	fmt.Fprintf(w, "%s %s %d/%d\n", ts.LifespanBar, textBar(est.Progress, textBarWidth), min(d.GainMonths, report.ProgressCapMonths), report.ProgressCapMonths)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", ts.TipsHeader)
	for _, tip := range est.Tips {
		fmt.Fprintf(w, "- %s\n", tip)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", ts.SeeDetails)
	fmt.Fprintf(w, "  drinks/week:  %d → %d\n", d.NowDrinksPerWeek, d.AfterDrinksPerWeek)
	fmt.Fprintf(w, "  RR:           %s → %s\n", report.FormatFloat(d.RRNow), report.FormatFloat(d.RRAfter))
	fmt.Fprintf(w, "  gain:         %s years (%d months)\n", report.FormatFloat(d.GainYears), d.GainMonths)

	if est.SavedID != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Saved: %s\n", est.SavedID)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", ts.Disclaimer)
}

func textBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
