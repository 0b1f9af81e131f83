// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/lost1n/lingo/bot/locales"
	"github.com/lost1n/lingo/bot/logger"
)

// MessageHandler is the conversation state machine. Each inbound event
// is classified against a strict precedence chain and exactly one
// response path runs:
//
//  1. self-echo suppression
//  2. menu postback
//  3. quick-reply payload (same tag vocabulary as postbacks)
//  4. "help" keyword with no context set
//  5. exact reset/switch keyword
//  6. no context set
//  7. direct change command ("<lang> <to> <lang>")
//  8. translation
type MessageHandler struct {
	logger     *logger.Manager
	cache      *BoundedCache
	repo       *ContextRepo
	profiles   ProfileProvider
	translator Translator
	sink       ReplySink
	tracker    Tracker

	pageID         string
	maxReplyLength int
}

// NewMessageHandler wires the handler to its collaborators. The cache
// is injected rather than constructed here so the admin API and tests
// can observe it.
func NewMessageHandler(log *logger.Manager, cache *BoundedCache, repo *ContextRepo, profiles ProfileProvider, translator Translator, sink ReplySink, tracker Tracker, pageID string, maxReplyLength int) *MessageHandler {
	return &MessageHandler{
		logger:         log,
		cache:          cache,
		repo:           repo,
		profiles:       profiles,
		translator:     translator,
		sink:           sink,
		tracker:        tracker,
		pageID:         pageID,
		maxReplyLength: maxReplyLength,
	}
}

// HandleEvent runs one inbound event through the dispatch chain. It
// never returns an error: collaborator failures become localized
// replies (or, for profile fetches, abort the event), and anything
// else is recovered and logged. The webhook transport answers 200
// regardless.
func (h *MessageHandler) HandleEvent(event Event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("handler", "panic while handling event", fmt.Sprintf("%v", r), string(debug.Stack()))
		}
	}()

	// clear the session cache if we need to
	h.cache.FlushIfSizeLimitExceeded()

	// we don't care about handling our own responses
	if event.Sender.ID == h.pageID {
		return
	}
	if event.Message == nil && event.Postback == nil {
		h.logger.Debug("handler", errNoEventContent.Error(), event.Sender.ID)
		return
	}

	sender := event.Sender
	profile, err := h.getProfile(sender.ID)
	if err != nil {
		// no locale or identity to build a reply with; end the turn
		h.logger.Error("handler", errProfileFetch.Error(), sender.ID, err.Error())
		return
	}

	// localised translator for conversations between the bot and the user
	loc := locales.NewLocalizer(locales.ResolveLocale(profile.Locale))

	response, err := h.repo.Get(sender.ID)
	if err != nil {
		h.logger.Error("store", errStoreRead.Error(), sender.ID, err.Error())
		h.send(sender.ID, Reply{Text: loc.Say("translation_error")})
		return
	}
	context := response.Context

	lowered := ""
	if event.Message != nil {
		lowered = strings.ToLower(event.Message.Text)
	}

	switch {
	case event.Postback != nil:
		h.handlePostback(context, event.Postback.Payload, profile, sender, loc)
	case event.Message.QuickReply != nil && event.Message.QuickReply.Payload != "":
		h.handlePostback(context, event.Message.QuickReply.Payload, profile, sender, loc)
	case strings.Contains(lowered, loc.Say("help")) && context == "":
		h.handleHelp(context, profile, sender, loc)
	case lowered == payloadReset || lowered == payloadSwitch:
		h.handlePostback(context, lowered, profile, sender, loc)
	case context == "":
		h.handleNoContext(sender, profile, event.Message.Text, loc)
	default:
		// we have context and the user has sent a text message; before
		// translating, check for a direct change command: <lang> to <lang>
		cmd := parseChangeCommand(event.Message.Text, loc)
		if cmd.Direct && cmd.From != cmd.To {
			h.handleSetContext(cmd.Code, cmd.From, cmd.To, sender, loc)
		} else {
			h.handleTranslation(context, sender, event.Message.Text, cmd, loc)
		}
	}
}

// getProfile consults the session cache before the profile provider,
// and repopulates the cache on a miss.
func (h *MessageHandler) getProfile(userID string) (Profile, error) {
	if session, ok := h.cache.Get(userID); ok && session.HasProfile {
		return session.Profile, nil
	}
	profile, err := h.profiles.GetProfile(userID)
	if err != nil {
		return Profile{}, err
	}
	h.cache.Update(userID, func(session *Session) {
		session.Profile = profile
		session.HasProfile = true
	})
	return profile, nil
}

// handlePostback dispatches a payload tag from either a menu postback
// or a quick reply.
func (h *MessageHandler) handlePostback(context string, payload string, profile Profile, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handlePostback", sender.ID, payload)

	tag, arg := parsePostbackTag(payload)
	switch tag {
	case TagGetStarted:
		h.handleGetStarted(sender, profile, loc)
	case TagHelp:
		h.handleHelp(context, profile, sender, loc)
	case TagReset:
		h.handleReset(sender, loc)
	case TagSwitch:
		h.handleSwitch(context, sender, loc)
	case TagListAllLanguages:
		h.handleShowAllLanguages(sender, loc)
	case TagSetDefaultPair:
		resolved := contextFromCode("es:en", loc)
		h.handleSetContext(resolved.Code, resolved.From, resolved.To, sender, loc)
	case TagWantSuggestions:
		h.handleShowSuggestions(profile, sender, loc)
	case TagTakeSuggestion:
		h.handleSetContextFromSuggestion(arg, sender, loc)
	default:
		h.logger.Warning("handler", errUnknownTag.Error(), sender.ID, payload)
		h.send(sender.ID, Reply{Text: loc.Say("unrecognised")})
	}
}

func (h *MessageHandler) handleGetStarted(sender Sender, profile Profile, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleGetStarted", sender.ID)

	suggestion := contextSuggestion(profile, loc)
	h.tracker.SetPerson(sender.ID, profile)
	h.tracker.Track("I click to get started", sender.ID, "")
	h.send(sender.ID, Reply{
		Text: loc.Say("getting_started", profile.FirstName, suggestion[0], suggestion[1]),
	})
}

func (h *MessageHandler) handleHelp(context string, profile Profile, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleHelp", sender.ID)

	suggestion := contextSuggestion(profile, loc)
	text := loc.Say("ask_for_help", suggestion[0], suggestion[1])
	options := []Button{
		postbackButton(loc.Say("show_all_languages"), payloadListAllLanguages),
	}

	if context != "" {
		resolved := contextFromCode(context, loc)
		text = loc.Say("ask_for_help_with_context", resolved.From, resolved.To)
		options = append([]Button{
			postbackButton(loc.Say("reset"), payloadReset),
			postbackButton(loc.Say("lang_to_lang", resolved.To, resolved.From), payloadSwitch),
		}, options...)
	} else if locales.ResolveLocale(profile.Locale) == "es" {
		// Spanish to English is the most common context for es users;
		// offer it as a preset while no context has been set
		options = append(options, postbackButton(loc.Say("lang_to_lang", "Español", "Inglés"), payloadSetDefaultPair))
	}

	h.tracker.Track("I ask for help", sender.ID, "")

	h.send(sender.ID, Reply{
		Attachment: &Attachment{
			Type: "template",
			Payload: ButtonTemplate{
				TemplateType: "button",
				Text:         text,
				Buttons:      options,
			},
		},
	})
}

func (h *MessageHandler) handleShowSuggestions(profile Profile, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleShowSuggestions", sender.ID)

	from := locales.ResolveLocale(profile.Locale)
	if from == "" || loc.LanguageName(from) == "" {
		from = locales.DefaultLocale
	}

	reply := Reply{Text: loc.Say("suggestions")}
	for _, code := range popularSuggestions(profile) {
		reply.QuickReplies = append(reply.QuickReplies, textQuickReply(
			languageName(code, loc),
			fmt.Sprintf("%s%s:%s", payloadTakeSuggestionPrefix, from, code),
		))
	}

	h.tracker.Track("I ask to see suggestions", sender.ID, "")
	h.send(sender.ID, reply)
}

// handleShowAllLanguages sends the full language list as three chunks;
// the platform caps reply sizes, so one message won't fit. The list is
// consumed by two destructive splits (a third, then half the rest).
func (h *MessageHandler) handleShowAllLanguages(sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleShowAllLanguages", sender.ID)

	list := allLanguageNames(loc)
	first := list[:len(list)/3]
	list = list[len(list)/3:]
	second := list[:len(list)/2]
	list = list[len(list)/2:]

	h.send(sender.ID, Reply{Text: fmt.Sprintf("%s\n\n%s", loc.Say("ok_here_goes"), strings.Join(first, ", "))})
	h.send(sender.ID, Reply{Text: strings.Join(second, ", ")})
	h.send(sender.ID, Reply{Text: fmt.Sprintf("%s\n\n %s", strings.Join(list, ", "), loc.Say("gasp"))})
}

func (h *MessageHandler) handleReset(sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleReset", sender.ID)

	// reset commits the empty string: a semantic clear, not a removal
	if err := h.repo.Set(sender.ID, ""); err != nil {
		h.logger.Error("store", errStoreWrite.Error(), sender.ID, err.Error())
		h.send(sender.ID, Reply{Text: loc.Say("translation_error")})
		return
	}

	h.tracker.Track("I reset context", sender.ID, "")
	h.send(sender.ID, Reply{Text: loc.Say("translate_next")})
}

func (h *MessageHandler) handleSwitch(context string, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleSwitch", sender.ID)

	if context == "" {
		// nothing to invert; prompt for a pair instead
		h.send(sender.ID, Reply{Text: loc.Say("translate_next")})
		return
	}

	resolved := contextFromCode(context, loc)
	switchContext(&resolved)
	h.handleSetContext(resolved.Code, resolved.From, resolved.To, sender, loc)
}

func (h *MessageHandler) handleNoContext(sender Sender, profile Profile, message string, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleNoContext", sender.ID)

	match := extractContext(message, false, loc)
	if match.HasTwo && match.From != match.To {
		h.handleSetContext(match.Code, match.From, match.To, sender, loc)
		return
	}
	if h.handleGeneralResponse(sender, profile, message) {
		return
	}

	h.tracker.Track("I incorrectly set context", sender.ID, message)

	text := loc.Say("unrecognised")
	if match.HasOne {
		text = loc.Say("part_unrecognised", match.From)
	}
	h.send(sender.ID, Reply{
		Text: text,
		QuickReplies: []QuickReply{
			textQuickReply(loc.Say("need_help"), payloadHelp),
			textQuickReply(loc.Say("suggest_from", localeLanguageName(profile, loc)), payloadWantSuggestions),
		},
	})
}

// handleGeneralResponse answers canned smalltalk (hello, goodbye,
// "hmm") and reports whether it handled the message.
func (h *MessageHandler) handleGeneralResponse(sender Sender, profile Profile, message string) bool {
	lowered := strings.ToLower(message)

	for _, farewell := range []string{"goodbye", "bye", "adios", "ciao", "seeya", "see you", "later"} {
		if lowered == farewell {
			reply := "Adiós muchacha"
			if profile.Gender == "male" {
				reply = "Adiós muchacho"
			}
			h.tracker.Track("I say goodbye without context", sender.ID, message)
			h.send(sender.ID, Reply{Text: reply})
			return true
		}
	}
	for _, greeting := range []string{"hello", "hi", "howdy", "hallo", "yo", "hey", "sup", "hiya", "hola"} {
		if lowered == greeting {
			h.tracker.Track("I say hello without context", sender.ID, message)
			h.send(sender.ID, Reply{Text: pickRandom([]string{
				fmt.Sprintf("Hi %s!", profile.FirstName),
				"Hello",
				"¡Hola!",
				fmt.Sprintf("Hey %s!", profile.FirstName),
				"Oh hey there!",
				"Hallo",
				"Howdy",
				"Oh Hiiiiii",
			})})
			return true
		}
	}
	if strings.Contains(lowered, "hmm") {
		h.send(sender.ID, Reply{Text: "hmmmm..."})
		return true
	}
	return false
}

func (h *MessageHandler) handleSetContextFromSuggestion(code string, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleSetContextFromSuggestion", sender.ID, code)

	resolved := contextFromCode(code, loc)
	h.tracker.Track("I change context with quick link", sender.ID, "")
	h.handleSetContext(code, resolved.From, resolved.To, sender, loc)
}

// handleSetContext commits a new pair. It is reached from five
// triggers (direct command, implicit no-context match, suggestion tap,
// default-pair button, switch) and must be safe from all of them: one
// durable write, then a reply echoing the new pair.
func (h *MessageHandler) handleSetContext(code string, from string, to string, sender Sender, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleSetContext", sender.ID, code)

	if err := h.repo.Set(sender.ID, code); err != nil {
		// don't tell the user the change stuck when it didn't
		h.logger.Error("store", errStoreWrite.Error(), sender.ID, err.Error())
		h.send(sender.ID, Reply{Text: loc.Say("translation_error")})
		return
	}

	h.tracker.Track("I set context", sender.ID, code)
	h.send(sender.ID, Reply{Text: loc.Say("set_context", from, to)})
}

func (h *MessageHandler) handleTranslation(context string, sender Sender, message string, cmd changeCommand, loc *locales.Localizer) {
	h.logger.Debug("handler", "handleTranslation", sender.ID)

	translated, err := h.translator.Translate(message, context)
	if err != nil {
		h.logger.Error("translate", errTranslation.Error(), sender.ID, err.Error())
		h.send(sender.ID, Reply{Text: loc.Say("translation_error")})
		return
	}

	h.tracker.Track("I send a message to be translated", sender.ID, message)

	if utf8.RuneCountInString(translated) > h.maxReplyLength {
		h.send(sender.ID, Reply{Text: loc.Say("too_long")})
		return
	}

	reply := Reply{Text: translated}
	// check if the user actually wants help by offering a quick reply
	// alongside the translated text
	if strings.Contains(strings.ToLower(message), loc.Say("help")) {
		reply.QuickReplies = append(reply.QuickReplies, textQuickReply(loc.Say("need_help"), payloadHelp))
	}
	// two languages were detected mid-sentence; offer the pair as a
	// one-tap change instead of silently overriding the translation
	if cmd.HasTwo {
		reply.QuickReplies = append(reply.QuickReplies, textQuickReply(
			loc.Say("lang_to_lang_question", cmd.From, cmd.To),
			payloadTakeSuggestionPrefix+cmd.Code,
		))
	}

	h.send(sender.ID, reply)
}

// send delivers one reply payload, logging delivery failures.
func (h *MessageHandler) send(userID string, reply Reply) {
	if err := h.sink.Send(userID, reply); err != nil {
		h.logger.Error("handler", errSendFailed.Error(), userID, err.Error())
	}
}

// localeLanguageName names the user's own language in the requesting
// locale, falling back to the default locale's language when the
// profile locale is missing or unknown.
func localeLanguageName(profile Profile, loc *locales.Localizer) string {
	if name := languageName(locales.ResolveLocale(profile.Locale), loc); name != "" {
		return name
	}
	return languageName(locales.DefaultLocale, loc)
}
