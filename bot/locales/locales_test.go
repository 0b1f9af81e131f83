// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package locales

import (
	"reflect"
	"testing"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %v but got %v", expected, supplied)
	}
}

func TestResolveLocale(t *testing.T) {
	assertEqual(ResolveLocale("en_GB"), "en", t)
	assertEqual(ResolveLocale("es_MX"), "es", t)
	assertEqual(ResolveLocale("zh_CN"), "zh", t)
	assertEqual(ResolveLocale(""), "", t)
	assertEqual(ResolveLocale("en"), "", t)
}

func TestLocalizerFallback(t *testing.T) {
	loc := NewLocalizer("it")
	assertEqual(loc.Locale, DefaultLocale, t)

	loc = NewLocalizer("")
	assertEqual(loc.Locale, DefaultLocale, t)

	loc = NewLocalizer("es")
	assertEqual(loc.Locale, "es", t)
}

func TestSay(t *testing.T) {
	loc := NewLocalizer("en")

	assertEqual(loc.Say("to"), "to", t)
	assertEqual(loc.Say("lang_to_lang", "English", "Spanish"), "English to Spanish", t)
	assertEqual(loc.Say("no_such_key"), LostInTranslation, t)

	// templates with no args supplied come back raw, verbs intact
	assertEqual(loc.Say("lang_to_lang"), "%s to %s", t)

	es := NewLocalizer("es")
	assertEqual(es.Say("to"), "a", t)
	assertEqual(es.Say("lang_to_lang", "Inglés", "Español"), "Inglés a Español", t)
}

func TestLanguageName(t *testing.T) {
	en := NewLocalizer("en")
	assertEqual(en.LanguageName("en"), "english", t)
	assertEqual(en.LanguageName("el"), "greek", t)
	assertEqual(en.LanguageName("zh-CN"), "mandarin", t)
	assertEqual(en.LanguageName("xx"), "", t)

	es := NewLocalizer("es")
	assertEqual(es.LanguageName("en"), "inglés", t)
	assertEqual(es.LanguageName("fr"), "francés", t)
}

// every supported catalog must carry the same message keys; a missing
// key would surface the LostInTranslation sentinel to users
func TestCatalogMessageParity(t *testing.T) {
	reference := catalogs[DefaultLocale]
	for _, locale := range Supported() {
		catalog := catalogs[locale]
		for key := range reference.Messages {
			if _, ok := catalog.Messages[key]; !ok {
				t.Errorf("catalog %s is missing message key %s", locale, key)
			}
		}
		for key := range catalog.Messages {
			if _, ok := reference.Messages[key]; !ok {
				t.Errorf("catalog %s has extra message key %s", locale, key)
			}
		}
	}
}

// codes must be unique within a catalog so code -> name resolution is
// well defined
func TestCatalogCodeUniqueness(t *testing.T) {
	for _, locale := range Supported() {
		catalog := catalogs[locale]
		seen := make(map[string]string)
		for _, entry := range catalog.Languages {
			if prev, ok := seen[entry.Code]; ok {
				t.Errorf("catalog %s: code %s maps to both %q and %q", locale, entry.Code, prev, entry.Name)
			}
			seen[entry.Code] = entry.Name
		}
	}
}

func TestAllLanguagesOrder(t *testing.T) {
	all := NewLocalizer("en").AllLanguages()
	enCount := len(catalogs["en"].Languages)

	// default locale's entries come first, so loose matches of shared
	// names resolve against the default catalog deterministically
	assertEqual(all[0], catalogs["en"].Languages[0], t)
	assertEqual(all[enCount], catalogs["es"].Languages[0], t)
	assertEqual(len(all), enCount+len(catalogs["es"].Languages), t)
}
