// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lost1n/lingo/bot/locales"
)

// A context code is the persisted representation of a user's active
// translation pair: "<fromCode>:<toCode>".

// ResolvedContext is a context code resolved against one locale's
// catalog for display.
type ResolvedContext struct {
	Code   string
	From   string
	To     string
	HasTwo bool
}

var upperCaser = cases.Upper(language.Und)

// capitalize uppercases the first rune only, leaving the rest of the
// name untouched ("puerto rican spanish" -> "Puerto rican spanish").
func capitalize(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return upperCaser.String(string(r)) + name[size:]
}

// contextFromCode resolves a pair code for display. It assumes a
// well-formed code: malformed or unknown codes yield empty names, not
// an error.
func contextFromCode(code string, loc *locales.Localizer) ResolvedContext {
	halves := strings.SplitN(code, ":", 2)
	resolved := ResolvedContext{Code: code, HasTwo: true}
	resolved.From = languageName(halves[0], loc)
	if len(halves) == 2 {
		resolved.To = languageName(halves[1], loc)
	}
	return resolved
}

// switchContext inverts a resolved context in place and returns it.
// Applying it twice restores the original values exactly.
func switchContext(context *ResolvedContext) *ResolvedContext {
	halves := strings.SplitN(context.Code, ":", 2)
	if len(halves) == 2 {
		context.Code = halves[1] + ":" + halves[0]
	}
	context.From, context.To = context.To, context.From
	return context
}

// languageName resolves a single language code to its capitalized
// display name in the requesting locale, or "" when unknown.
func languageName(code string, loc *locales.Localizer) string {
	return capitalize(loc.LanguageName(code))
}

// allLanguageNames returns every display name in the requesting
// locale's catalog, capitalized and sorted.
func allLanguageNames(loc *locales.Localizer) []string {
	entries := loc.Languages()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, capitalize(entry.Name))
	}
	sort.Strings(names)
	return names
}
