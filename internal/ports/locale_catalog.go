package ports

import "github.com/aalvaropc/healthgain/internal/domain"

// LocaleCatalog resolves the string table for a display language.
type LocaleCatalog interface {
	Lookup(l domain.Locale) (domain.TemplateSet, error)
	Locales() []domain.Locale
}
