// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package locales

import (
	"fmt"
	"strings"
)

const (
	// DefaultLocale is the catalog used whenever a user's locale is
	// missing or unsupported.
	DefaultLocale = "en"

	// LostInTranslation is returned by Say when a message key is missing
	// from the bound catalog. It should never surface in a normal reply.
	LostInTranslation = "Lost in translation"
)

// LanguageEntry pairs a language's display name (lowercase, in one
// locale) with its translation code.
type LanguageEntry struct {
	Name string
	Code string
}

// Catalog holds one locale's message templates and language names.
type Catalog struct {
	Locale    string
	Messages  map[string]string
	Languages []LanguageEntry
}

var (
	catalogs = map[string]*Catalog{
		"en": &catalogEN,
		"es": &catalogES,
	}

	// aggregate of every supported locale's language catalog, in a fixed
	// order (default locale first) so loose matching is deterministic
	allLanguages []LanguageEntry
)

func init() {
	allLanguages = append(allLanguages, catalogEN.Languages...)
	allLanguages = append(allLanguages, catalogES.Languages...)
}

// Supported returns the supported locale codes.
func Supported() []string {
	return []string{"en", "es"}
}

// ResolveLocale extracts the primary language code from a locale tag of
// the form "xx_YY" (e.g. "es_GB" -> "es"). It returns the empty string
// when the tag is missing, empty, or lacks the separator.
func ResolveLocale(tag string) string {
	if tag == "" || !strings.Contains(tag, "_") {
		return ""
	}
	return strings.SplitN(tag, "_", 2)[0]
}

// Localizer renders user-facing strings and language names for one
// supported locale, falling back to the default locale when the
// requested one is unsupported.
type Localizer struct {
	Locale  string
	catalog *Catalog
}

// NewLocalizer returns a localizer bound to the nearest supported
// catalog for localeCode.
func NewLocalizer(localeCode string) *Localizer {
	catalog, ok := catalogs[localeCode]
	if !ok {
		localeCode = DefaultLocale
		catalog = catalogs[DefaultLocale]
	}
	return &Localizer{Locale: localeCode, catalog: catalog}
}

// Say looks up the template for key in the bound catalog and performs
// positional substitution. Missing keys yield the LostInTranslation
// sentinel rather than an error.
func (l *Localizer) Say(key string, args ...interface{}) string {
	template, ok := l.catalog.Messages[key]
	if !ok {
		return LostInTranslation
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// Languages returns this locale's own language catalog.
func (l *Localizer) Languages() []LanguageEntry {
	return l.catalog.Languages
}

// AllLanguages returns the multi-locale aggregate catalog, used for
// loose matching so a user can name a language in any supported display
// language.
func (l *Localizer) AllLanguages() []LanguageEntry {
	return allLanguages
}

// LanguageName resolves a translation code to its display name in this
// locale, or "" when the code is unknown.
func (l *Localizer) LanguageName(code string) string {
	for _, entry := range l.catalog.Languages {
		if entry.Code == code {
			return entry.Name
		}
	}
	return ""
}
