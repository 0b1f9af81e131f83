// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package locales

var catalogEN = Catalog{
	Locale: "en",
	Messages: map[string]string{
		"help":                      "help",
		"getting_started":           "Hi %s! Start by telling me which languages to translate for you. Say something like %s to %s\n\nAsk me for \"help\" at any time",
		"ask_for_help":              "Hi. I see you've asked for help... \n\nTell me which languages to translate by saying something like %s to %s",
		"ask_for_help_with_context": "Hi again. I see you've asked for help...\n\nI'm currently translating everything you say from %s to %s\n\n",
		"reset":                     "Reset",
		"lang_to_lang":              "%s to %s",
		"lang_to_lang_question":     "%s to %s?",
		"unrecognised":              "Woah, I didn't get that. Ask me for help at any time.",
		"part_unrecognised":         "I only caught %s there. Try again, or ask for \"help\"",
		"set_context":               "%s to %s. Got it! Now go ahead and tell me what to say",
		"too_long":                  "Sorry, I can't translate all of that. Try again with a smaller message",
		"translation_error":         "Oh no, something has gone wrong. Please try that again",
		"to":                        "to",
		"show_all_languages":        "Show all languages",
		"ok_here_goes":              "OK, here goes...",
		"gasp":                      "*GASP*",
		"translate_next":            "OK, what should I translate for you?",
		"need_help":                 "Need help?",
		"suggestions":               "Here are some of the most popular languages to translate to...",
		"suggest_from":              "Translate from %s?",
	},
	Languages: []LanguageEntry{
		{"afrikaans", "af"},
		{"albanian", "sq"},
		{"arabic", "ar"},
		{"armenian", "hy"},
		{"azerbaijani", "az"},
		{"basque", "eu"},
		{"belarusian", "be"},
		{"bengali", "bn"},
		{"bosnian", "bs"},
		{"bulgarian", "bg"},
		{"catalan", "ca"},
		{"cebuano", "ceb"},
		{"chichewa", "ny"},
		{"croatian", "hr"},
		{"czech", "cs"},
		{"danish", "da"},
		{"dutch", "nl"},
		{"english", "en"},
		{"esperanto", "eo"},
		{"estonian", "et"},
		{"filipino", "tl"},
		{"finnish", "fi"},
		{"french", "fr"},
		{"galician", "gl"},
		{"georgian", "ka"},
		{"german", "de"},
		{"greek", "el"},
		{"gujarati", "gu"},
		{"haitian creole", "ht"},
		{"hausa", "ha"},
		{"hebrew", "iw"},
		{"hindi", "hi"},
		{"hmong", "hmn"},
		{"hungarian", "hu"},
		{"icelandic", "is"},
		{"igbo", "ig"},
		{"indonesian", "id"},
		{"irish", "ga"},
		{"italian", "it"},
		{"japanese", "ja"},
		{"javanese", "jw"},
		{"kannada", "kn"},
		{"kazakh", "kk"},
		{"khmer", "km"},
		{"korean", "ko"},
		{"lao", "lo"},
		{"latin", "la"},
		{"latvian", "lv"},
		{"lithuanian", "lt"},
		{"macedonian", "mk"},
		{"malagasy", "mg"},
		{"malay", "ms"},
		{"malayalam", "ml"},
		{"maltese", "mt"},
		{"mandarin", "zh-CN"},
		{"maori", "mi"},
		{"marathi", "mr"},
		{"mongolian", "mn"},
		{"burmese", "my"},
		{"nepali", "ne"},
		{"norwegian", "no"},
		{"persian", "fa"},
		{"polish", "pl"},
		{"portuguese", "pt"},
		{"punjabi", "ma"},
		{"romanian", "ro"},
		{"russian", "ru"},
		{"serbian", "sr"},
		{"sesotho", "st"},
		{"sinhala", "si"},
		{"slovak", "sk"},
		{"slovenian", "sl"},
		{"somali", "so"},
		{"spanish", "es"},
		{"sudanese", "su"},
		{"swahili", "sw"},
		{"swedish", "sv"},
		{"tajik", "tg"},
		{"tamil", "ta"},
		{"telugu", "te"},
		{"thai", "th"},
		{"turkish", "tr"},
		{"ukrainian", "uk"},
		{"urdu", "ur"},
		{"uzbek", "uz"},
		{"vietnamese", "vi"},
		{"welsh", "cy"},
		{"yiddish", "yi"},
		{"yoruba", "yo"},
		{"zulu", "zu"},
	},
}
