// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lost1n/lingo/bot/logger"
)

func signBody(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"object":"page"}`)

	assertEqual(validSignature(signBody(string(body), "secret"), body, "secret"), true, t)
	assertEqual(validSignature(signBody(string(body), "wrong"), body, "secret"), false, t)
	assertEqual(validSignature("", body, "secret"), false, t)
	assertEqual(validSignature("sha256=nothex", body, "secret"), false, t)
	assertEqual(validSignature("sha1=deadbeef", body, "secret"), false, t)
}

func newTestServer(t *testing.T) *Server {
	logman, err := logger.NewManager(nil)
	if err != nil {
		t.Fatal(err)
	}
	config := &Config{}
	config.Platform.VerifyToken = "vt"
	config.Platform.AppSecret = "secret"
	config.Server.maxRequestBytes = 64 * 1024
	return &Server{config: config, logger: logman}
}

func TestWebhookVerifyHandshake(t *testing.T) {
	server := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=vt&hub.challenge=12345", nil)
	server.handleWebhook(recorder, request)

	assertEqual(recorder.Code, http.StatusOK, t)
	assertEqual(recorder.Body.String(), "12345", t)
}

func TestWebhookVerifyRejectsBadToken(t *testing.T) {
	server := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	server.handleWebhook(recorder, request)

	assertEqual(recorder.Code, http.StatusForbidden, t)
}

func TestWebhookEventsRejectBadSignature(t *testing.T) {
	server := newTestServer(t)

	body := `{"object":"page","entry":[]}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	request.Header.Set("X-Hub-Signature-256", signBody(body, "not the secret"))
	server.handleWebhook(recorder, request)

	assertEqual(recorder.Code, http.StatusUnauthorized, t)
}

func TestWebhookEventsAckMalformedBody(t *testing.T) {
	server := newTestServer(t)
	server.handler = &MessageHandler{}

	body := `{{{not json`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	request.Header.Set("X-Hub-Signature-256", signBody(body, "secret"))
	server.handleWebhook(recorder, request)

	// authenticated but unparseable: acknowledge so the platform
	// doesn't redeliver forever
	assertEqual(recorder.Code, http.StatusOK, t)
}

func TestWebhookRejectsUnknownMethod(t *testing.T) {
	server := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/webhook", nil)
	server.handleWebhook(recorder, request)

	assertEqual(recorder.Code, http.StatusMethodNotAllowed, t)
}
