// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"reflect"
	"testing"

	"github.com/lost1n/lingo/bot/locales"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %v but got %v", expected, supplied)
	}
}

func TestExtractContextStrict(t *testing.T) {
	loc := locales.NewLocalizer("en")

	match := extractContext("english to spanish", true, loc)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:es", t)
	assertEqual(match.From, "English", t)
	assertEqual(match.To, "Spanish", t)

	// strict mode requires exactly three tokens
	match = extractContext("translate from english to spanish please", true, loc)
	assertEqual(match.HasNone, true, t)

	match = extractContext("english spanish", true, loc)
	assertEqual(match.HasNone, true, t)
}

func TestExtractContextLoose(t *testing.T) {
	loc := locales.NewLocalizer("en")

	match := extractContext("translate from english to spanish please", false, loc)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:es", t)

	match = extractContext("french to blahh", false, loc)
	assertEqual(match.HasOne, true, t)
	assertEqual(match.From, "French", t)
	assertEqual(match.Code, "", t)

	match = extractContext("ping to pong", false, loc)
	assertEqual(match.HasNone, true, t)

	// matching stops after two languages
	match = extractContext("english french german", false, loc)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:fr", t)
}

// a language may be named in any supported display language; the match
// re-renders in the requesting locale
func TestExtractContextMixedLocales(t *testing.T) {
	loc := locales.NewLocalizer("en")

	match := extractContext("english to español", false, loc)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:es", t)
	assertEqual(match.From, "English", t)
	assertEqual(match.To, "Spanish", t)

	es := locales.NewLocalizer("es")
	match = extractContext("english to spanish", false, es)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:es", t)
	assertEqual(match.From, "Inglés", t)
	assertEqual(match.To, "Español", t)
}

func TestExtractContextCaseInsensitive(t *testing.T) {
	loc := locales.NewLocalizer("en")

	match := extractContext("ENGLISH to Spanish", true, loc)
	assertEqual(match.HasTwo, true, t)
	assertEqual(match.Code, "en:es", t)
}

func TestParseChangeCommand(t *testing.T) {
	loc := locales.NewLocalizer("en")

	assertEqual(isDirectChangeCommand("english to spanish", loc), true, t)
	assertEqual(isDirectChangeCommand("english to blahh", loc), false, t)
	assertEqual(isDirectChangeCommand("please translate english to spanish", loc), false, t)
	assertEqual(isDirectChangeCommand("english spanish to", loc), false, t)
	assertEqual(isDirectChangeCommand("hello there friend", loc), false, t)

	// the connector is localized
	es := locales.NewLocalizer("es")
	assertEqual(isDirectChangeCommand("inglés a español", es), true, t)
	assertEqual(isDirectChangeCommand("inglés to español", es), false, t)

	// a non-direct match still carries the pair for suggestion chips
	cmd := parseChangeCommand("can you do french to dutch", loc)
	assertEqual(cmd.Direct, false, t)
	assertEqual(cmd.HasTwo, true, t)
	assertEqual(cmd.Code, "fr:nl", t)
}
