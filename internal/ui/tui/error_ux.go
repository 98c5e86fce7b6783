package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/healthgain/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// fieldLabel maps a validation field name to its form label.
func fieldLabel(ts domain.TemplateSet, field string) string {
	switch field {
	case "age":
		return ts.Age
	case "drinking_days_now":
		return ts.DaysNow
	case "drinks_per_occasion":
		return ts.DrinksPerOccasion
	case "years_drinking":
		return ts.YearsDrinking
	case "target_days":
		return ts.DaysGoal
	default:
		return field
	}
}

func userMessage(ts domain.TemplateSet, err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, errRecovered) {
		return "Something went wrong; the form was reset (see logs)"
	}

	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s: %d (%d–%d)", fieldLabel(ts, fe.Field), fe.Value, fe.Min, fe.Max)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidArgument:
			if strings.Contains(oe.Op, "locale") {
				return "Unsupported language"
			}
			return "Invalid input"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "locales") {
				return "Language not available"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindMissingVar:
			return "Broken language file (see logs)"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.Contains(oe.Op, "resultstore") {
				return "Could not save result (see logs)"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
