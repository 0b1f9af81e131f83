// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"strings"

	"github.com/lost1n/lingo/bot/locales"
)

// IntentMatch is the result of scanning a message for language names.
// Exactly one of HasTwo/HasOne/HasNone is true.
type IntentMatch struct {
	Code    string
	From    string
	To      string
	HasTwo  bool
	HasOne  bool
	HasNone bool
}

// changeCommand is an IntentMatch together with whether the message was
// a minimal, unambiguous "<lang> <to> <lang>" command.
type changeCommand struct {
	IntentMatch
	Direct bool
}

// extractContext scans message for recognized language names. In strict
// mode, matching only proceeds when the message is exactly three
// space-separated tokens (the "<lang> <to> <lang>" shape); loose mode
// scans every token. Tokens are compared case-insensitively against the
// multi-locale aggregate catalog, so a language may be named in any
// supported display language; matched names re-render in the requesting
// locale. Matching stops after two matches.
func extractContext(message string, strict bool, loc *locales.Localizer) IntentMatch {
	var matches []locales.LanguageEntry
	words := strings.Split(message, " ")
	if !strict || len(words) == 3 {
		for _, word := range words {
			if len(matches) == 2 {
				break
			}
			for _, entry := range loc.AllLanguages() {
				if strings.EqualFold(entry.Name, word) {
					matches = append(matches, locales.LanguageEntry{
						Name: loc.LanguageName(entry.Code),
						Code: entry.Code,
					})
					break
				}
			}
		}
	}

	match := IntentMatch{
		HasTwo:  len(matches) == 2,
		HasOne:  len(matches) == 1,
		HasNone: len(matches) == 0,
	}
	if match.HasOne || match.HasTwo {
		match.From = capitalize(matches[0].Name)
	}
	if match.HasTwo {
		match.To = capitalize(matches[1].Name)
		match.Code = matches[0].Code + ":" + matches[1].Code
	}
	return match
}

// parseChangeCommand runs loose extraction and additionally reports
// whether the message qualifies as a direct change command: exactly
// three tokens with the localized "to" connector in the middle and two
// recognized languages. A two-language match embedded in a longer
// sentence is not direct; callers offer it as a suggestion instead of
// auto-applying it.
func parseChangeCommand(message string, loc *locales.Localizer) changeCommand {
	match := extractContext(message, false, loc)
	words := strings.Split(message, " ")
	direct := len(words) == 3 && words[1] == loc.Say("to") && match.HasTwo
	return changeCommand{IntentMatch: match, Direct: direct}
}

// isDirectChangeCommand reports whether message is a minimal
// "<lang> <to> <lang>" command.
func isDirectChangeCommand(message string, loc *locales.Localizer) bool {
	return parseChangeCommand(message, loc).Direct
}
