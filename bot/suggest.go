// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"math/rand"

	"github.com/lost1n/lingo/bot/locales"
)

var (
	// exampleLanguages seeds the "say something like X to Y" prompts.
	exampleLanguages = []string{
		"en", "de", "it", "ko", "nl", "ja", "hi",
		"es", "fr", "id", "ru", "zh-CN", "el",
	}

	// popularLanguages backs the suggestion quick-reply chips.
	popularLanguages = []string{"en", "es", "fr", "de", "it", "pt"}
)

// contextSuggestion derives a non-redundant example language pair for
// the profile's locale: the user's own language plus a random other
// example, or two random distinct examples when the locale is unknown.
// Both entries are always real display names in the requesting locale.
func contextSuggestion(profile Profile, loc *locales.Localizer) [2]string {
	locale := locales.ResolveLocale(profile.Locale)
	localeLanguageName := languageName(locale, loc)

	shuffled := shuffledExamples()
	if localeLanguageName == "" {
		return [2]string{languageName(shuffled[0], loc), languageName(shuffled[1], loc)}
	}

	for _, code := range shuffled {
		if code != locale {
			return [2]string{localeLanguageName, languageName(code, loc)}
		}
	}
	// unreachable while exampleLanguages holds more than one entry
	return [2]string{localeLanguageName, languageName(shuffled[0], loc)}
}

// popularSuggestions returns the popular pair target codes with the
// user's own locale code excluded.
func popularSuggestions(profile Profile) []string {
	locale := locales.ResolveLocale(profile.Locale)
	suggestions := make([]string, 0, len(popularLanguages))
	for _, code := range popularLanguages {
		if code != locale {
			suggestions = append(suggestions, code)
		}
	}
	return suggestions
}

func shuffledExamples() []string {
	shuffled := make([]string, len(exampleLanguages))
	copy(shuffled, exampleLanguages)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// pickRandom returns a random element of responses.
func pickRandom(responses []string) string {
	return responses[rand.Intn(len(responses))]
}
