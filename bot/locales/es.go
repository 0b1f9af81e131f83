// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package locales

var catalogES = Catalog{
	Locale: "es",
	Messages: map[string]string{
		"help":                      "ayuda",
		"getting_started":           "Hola %s! Empiece por decirme qué idiomas traducir para usted. Di algo como %s al %s\n\nPídeme \"ayuda\" en cualquier momento",
		"ask_for_help":              "Hola. Veo que has pedido ayuda... \n\nDime qué idiomas traducir diciendo algo como %s al %s",
		"ask_for_help_with_context": "Hola de nuevo. Veo que has pedido ayuda...\n\nActualmente estoy traduciendo todo lo que dices del %s al %s\n\n",
		"reset":                     "Reiniciar",
		"lang_to_lang":              "%s a %s",
		"lang_to_lang_question":     "¿%s a %s?",
		"unrecognised":              "Wow, no lo entendí. Pídeme ayuda en cualquier momento.",
		"part_unrecognised":         "Sólo entendí %s allí. Inténtalo de nuevo, o pide \"ayuda\"",
		"set_context":               "%s a %s. ¡Lo tengo! Ahora adelante y dime que decir",
		"too_long":                  "Lo siento, no puedo traducir todo eso. Inténtalo de nuevo con un mensaje más pequeño",
		"translation_error":         "Oh no, algo ha ido mal. Por favor, inténtelo de nuevo",
		"to":                        "a",
		"show_all_languages":        "Mostrar todos los idiomas",
		"ok_here_goes":              "OK, aquí va...",
		"gasp":                      "*JADEAR*",
		"translate_next":            "OK, ¿qué debo traducir para ti?",
		"need_help":                 "¿Necesitas ayuda?",
		"suggestions":               "Aquí tienes algunos de los idiomas más populares para traducir...",
		"suggest_from":              "¿Traducir del %s?",
	},
	Languages: []LanguageEntry{
		{"afrikaans", "af"},
		{"albanian", "sq"},
		{"arabic", "ar"},
		{"armenio", "hy"},
		{"azerbaiyano", "az"},
		{"basque", "eu"},
		{"belarusian", "be"},
		{"bengali", "bn"},
		{"bosnio", "bs"},
		{"búlgaro", "bg"},
		{"burmese", "my"},
		{"catalan", "ca"},
		{"cebuano", "ceb"},
		{"chichewa", "ny"},
		{"chino", "zh-CN"},
		{"croata", "hr"},
		{"checo", "cs"},
		{"danés", "da"},
		{"holandés", "nl"},
		{"inglés", "en"},
		{"esperanto", "eo"},
		{"estonio", "et"},
		{"filipino", "tl"},
		{"finlandés", "fi"},
		{"francés", "fr"},
		{"gallego", "gl"},
		{"georgiano", "ka"},
		{"alemán", "de"},
		{"griego", "el"},
		{"gujarati", "gu"},
		{"haitian creole", "ht"},
		{"hausa", "ha"},
		{"hebreo", "iw"},
		{"hindi", "hi"},
		{"hmong", "hmn"},
		{"húngaro", "hu"},
		{"islandés", "is"},
		{"igbo", "ig"},
		{"indonesio", "id"},
		{"irlandés", "ga"},
		{"italiano", "it"},
		{"japanese", "ja"},
		{"javanese", "jw"},
		{"kannada", "kn"},
		{"kazakh", "kk"},
		{"khmer", "km"},
		{"coreano", "ko"},
		{"lao", "lo"},
		{"latin", "la"},
		{"letón", "lv"},
		{"lituano", "lt"},
		{"macedonio", "mk"},
		{"malgache", "mg"},
		{"malay", "ms"},
		{"malayalam", "ml"},
		{"maltés", "mt"},
		{"maorí", "mi"},
		{"marathi", "mr"},
		{"mongolian", "mn"},
		{"nepalí", "ne"},
		{"noruego", "no"},
		{"persa", "fa"},
		{"polaco", "pl"},
		{"portugués", "pt"},
		{"punjabi", "ma"},
		{"rumano", "ro"},
		{"ruso", "ru"},
		{"serbio", "sr"},
		{"sesotho", "st"},
		{"sinhala", "si"},
		{"eslovaco", "sk"},
		{"esloveno", "sl"},
		{"somali", "so"},
		{"español", "es"},
		{"sudanés", "su"},
		{"swahili", "sw"},
		{"sueco", "sv"},
		{"tajik", "tg"},
		{"tamil", "ta"},
		{"telugu", "te"},
		{"tailandés", "th"},
		{"turco", "tr"},
		{"ucraniano", "uk"},
		{"urdu", "ur"},
		{"uzbek", "uz"},
		{"vietnamita", "vi"},
		{"galés", "cy"},
		{"yiddish", "yi"},
		{"yoruba", "yo"},
		{"zulu", "zu"},
	},
}
