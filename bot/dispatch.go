// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import "strings"

// PostbackTag enumerates the closed set of payload tags carried by menu
// postbacks and quick replies. The wire strings must match the platform
// menu definition exactly.
type PostbackTag int

const (
	TagUnknown PostbackTag = iota
	TagGetStarted
	TagHelp
	TagReset
	TagSwitch
	TagListAllLanguages
	TagSetDefaultPair
	TagWantSuggestions
	TagTakeSuggestion
)

const (
	payloadGetStarted       = "get-started"
	payloadHelp             = "help"
	payloadReset            = "reset"
	payloadSwitch           = "switch"
	payloadListAllLanguages = "list-all-languages"
	payloadSetDefaultPair   = "set-default-pair"
	payloadWantSuggestions  = "want-suggestions"

	// take-suggestion payloads carry the suggested pair code as a suffix,
	// e.g. "take-suggestion:es:en"
	payloadTakeSuggestionPrefix = "take-suggestion:"
)

// parsePostbackTag classifies a wire payload. For take-suggestion
// payloads, arg holds the embedded pair code.
func parsePostbackTag(payload string) (tag PostbackTag, arg string) {
	if strings.HasPrefix(payload, payloadTakeSuggestionPrefix) {
		return TagTakeSuggestion, strings.TrimPrefix(payload, payloadTakeSuggestionPrefix)
	}
	switch payload {
	case payloadGetStarted:
		return TagGetStarted, ""
	case payloadHelp:
		return TagHelp, ""
	case payloadReset:
		return TagReset, ""
	case payloadSwitch:
		return TagSwitch, ""
	case payloadListAllLanguages:
		return TagListAllLanguages, ""
	case payloadSetDefaultPair:
		return TagSetDefaultPair, ""
	case payloadWantSuggestions:
		return TagWantSuggestions, ""
	default:
		return TagUnknown, ""
	}
}
