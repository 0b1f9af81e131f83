// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"sort"
	"testing"

	"github.com/lost1n/lingo/bot/locales"
)

func TestCapitalize(t *testing.T) {
	assertEqual(capitalize("english"), "English", t)
	assertEqual(capitalize("puerto rican spanish"), "Puerto rican spanish", t)
	assertEqual(capitalize("español"), "Español", t)
	assertEqual(capitalize(""), "", t)
}

func TestContextFromCode(t *testing.T) {
	loc := locales.NewLocalizer("en")

	resolved := contextFromCode("en:es", loc)
	assertEqual(resolved.Code, "en:es", t)
	assertEqual(resolved.From, "English", t)
	assertEqual(resolved.To, "Spanish", t)

	es := locales.NewLocalizer("es")
	resolved = contextFromCode("en:es", es)
	assertEqual(resolved.From, "Inglés", t)
	assertEqual(resolved.To, "Español", t)

	// malformed and unknown codes resolve to empty names, not errors
	resolved = contextFromCode("en", loc)
	assertEqual(resolved.From, "English", t)
	assertEqual(resolved.To, "", t)

	resolved = contextFromCode("xx:yy", loc)
	assertEqual(resolved.From, "", t)
	assertEqual(resolved.To, "", t)
}

func TestSwitchContext(t *testing.T) {
	loc := locales.NewLocalizer("en")

	resolved := contextFromCode("en:es", loc)
	switchContext(&resolved)
	assertEqual(resolved.Code, "es:en", t)
	assertEqual(resolved.From, "Spanish", t)
	assertEqual(resolved.To, "English", t)

	// applying the switch twice restores the original exactly
	switchContext(&resolved)
	assertEqual(resolved, contextFromCode("en:es", loc), t)
}

func TestAllLanguageNames(t *testing.T) {
	loc := locales.NewLocalizer("en")
	names := allLanguageNames(loc)

	assertEqual(len(names), len(loc.Languages()), t)
	assertEqual(sort.StringsAreSorted(names), true, t)
	for _, name := range names {
		assertEqual(name, capitalize(name), t)
	}
}
