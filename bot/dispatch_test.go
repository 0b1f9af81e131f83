// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"testing"
)

func TestParsePostbackTag(t *testing.T) {
	cases := []struct {
		payload string
		tag     PostbackTag
		arg     string
	}{
		{"get-started", TagGetStarted, ""},
		{"help", TagHelp, ""},
		{"reset", TagReset, ""},
		{"switch", TagSwitch, ""},
		{"list-all-languages", TagListAllLanguages, ""},
		{"set-default-pair", TagSetDefaultPair, ""},
		{"want-suggestions", TagWantSuggestions, ""},
		{"take-suggestion:en:fr", TagTakeSuggestion, "en:fr"},
		{"take-suggestion:", TagTakeSuggestion, ""},
		{"", TagUnknown, ""},
		{"bogus-payload", TagUnknown, ""},
		{"Help", TagUnknown, ""},
	}
	for _, c := range cases {
		tag, arg := parsePostbackTag(c.payload)
		if tag != c.tag || arg != c.arg {
			t.Errorf("parsePostbackTag(%q): got (%v, %q), want (%v, %q)", c.payload, tag, arg, c.tag, c.arg)
		}
	}
}
