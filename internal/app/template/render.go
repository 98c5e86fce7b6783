package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/healthgain/internal/domain"
)

// RenderString replaces {name} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.IndexByte(rest, '{')
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+1:]

		end := strings.IndexByte(rest, '}')
		if end == -1 {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("unclosed placeholder in %q: %w", input, domain.ErrInvalidConfig),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("empty placeholder in %q: %w", input, domain.ErrInvalidConfig),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindMissingVar,
				Err:  fmt.Errorf("missing variable %q: %w", key, domain.ErrMissingVar),
			}
		}

		out.WriteString(value)
		rest = rest[end+1:]
	}
}

// Placeholders lists the placeholder names used in input, in order of appearance.
func Placeholders(input string) []string {
	var names []string
	rest := input
	for {
		start := strings.IndexByte(rest, '{')
		if start == -1 {
			return names
		}
		rest = rest[start+1:]
		end := strings.IndexByte(rest, '}')
		if end == -1 {
			return names
		}
		if key := strings.TrimSpace(rest[:end]); key != "" {
			names = append(names, key)
		}
		rest = rest[end+1:]
	}
}
