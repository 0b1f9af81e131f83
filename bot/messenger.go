// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Wire types for the messaging platform: the inbound event envelope,
// the outbound reply payloads, and the REST client for the send and
// profile APIs.

const defaultGraphURL = "https://graph.facebook.com/v2.6"

// Sender identifies the user a platform event came from.
type Sender struct {
	ID string `json:"id"`
}

// QuickReplyPayload is the tag attached to a tapped quick-reply chip.
type QuickReplyPayload struct {
	Payload string `json:"payload"`
}

// EventMessage is the message part of an inbound event.
type EventMessage struct {
	Text       string             `json:"text"`
	QuickReply *QuickReplyPayload `json:"quick_reply,omitempty"`
}

// Postback is a structured menu button press.
type Postback struct {
	Payload string `json:"payload"`
}

// Event is one inbound messaging event.
type Event struct {
	Sender   Sender        `json:"sender"`
	Message  *EventMessage `json:"message,omitempty"`
	Postback *Postback     `json:"postback,omitempty"`
}

// webhookBody is the platform's webhook POST envelope.
type webhookBody struct {
	Object string `json:"object"`
	Entry  []struct {
		Messaging []Event `json:"messaging"`
	} `json:"entry"`
}

// QuickReply is an outbound quick-reply chip.
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

// Button is an outbound postback button.
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// ButtonTemplate is the structured button reply payload.
type ButtonTemplate struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
}

// Attachment wraps a template payload.
type Attachment struct {
	Type    string         `json:"type"`
	Payload ButtonTemplate `json:"payload"`
}

// Reply is one outbound reply payload: plain text, text with
// quick-reply chips, or a button template.
type Reply struct {
	Text         string       `json:"text,omitempty"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
	Attachment   *Attachment  `json:"attachment,omitempty"`
}

func postbackButton(title, payload string) Button {
	return Button{Type: "postback", Title: title, Payload: payload}
}

func textQuickReply(title, payload string) QuickReply {
	return QuickReply{ContentType: "text", Title: title, Payload: payload}
}

// ReplySink delivers replies to a user. Sequential sends for one
// logical response must arrive in emission order.
type ReplySink interface {
	Send(userID string, reply Reply) error
}

// Profile is the platform's view of a user.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Locale    string `json:"locale"`
	Gender    string `json:"gender"`
}

// ProfileProvider fetches a user's profile.
type ProfileProvider interface {
	GetProfile(userID string) (Profile, error)
}

// MessengerClient talks to the platform's Graph-style REST API for
// both profile lookups and message sends.
type MessengerClient struct {
	client    *resty.Client
	graphURL  string
	pageToken string
}

func NewMessengerClient(graphURL, pageToken string, timeout time.Duration) *MessengerClient {
	if graphURL == "" {
		graphURL = defaultGraphURL
	}
	return &MessengerClient{
		client:    resty.New().SetTimeout(timeout),
		graphURL:  strings.TrimRight(graphURL, "/"),
		pageToken: pageToken,
	}
}

func (mc *MessengerClient) GetProfile(userID string) (profile Profile, err error) {
	resp, err := mc.client.R().
		SetQueryParams(map[string]string{
			"fields":       "first_name,last_name,locale,gender",
			"access_token": mc.pageToken,
		}).
		SetResult(&profile).
		Get(fmt.Sprintf("%s/%s", mc.graphURL, userID))
	if err != nil {
		return profile, err
	}
	if resp.IsError() {
		return profile, fmt.Errorf("%w: %s", errProfileFetch, resp.Status())
	}
	profile.ID = userID
	return profile, nil
}

func (mc *MessengerClient) Send(userID string, reply Reply) error {
	body := struct {
		Recipient Sender `json:"recipient"`
		Message   Reply  `json:"message"`
	}{
		Recipient: Sender{ID: userID},
		Message:   reply,
	}

	resp, err := mc.client.R().
		SetQueryParam("access_token", mc.pageToken).
		SetBody(body).
		Post(mc.graphURL + "/me/messages")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s", errSendFailed, resp.Status())
	}
	return nil
}

// validSignature checks the webhook HMAC digest header
// ("sha256=<hex>") against the raw request body.
func validSignature(header string, body []byte, appSecret string) bool {
	const prefix = "sha256="
	if !strings.HasPrefix(header, prefix) {
		return false
	}
	provided, err := hex.DecodeString(header[len(prefix):])
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
