// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestAPI(t *testing.T) (*adminAPI, *Server) {
	server := newTestServer(t)
	server.config.API.Enabled = true
	server.config.API.bearerTokenBytes = [][]byte{[]byte("sekrit")}
	server.config.Datastore.Backend = "buntdb"
	server.store = newMemContextStore()
	server.cache = NewBoundedCache(10)
	return newAPIHandler(server).(*adminAPI), server
}

func TestAPIBearerAuth(t *testing.T) {
	api, server := newTestAPI(t)

	assertEqual(api.checkBearerAuth(""), false, t)
	assertEqual(api.checkBearerAuth("Bearer sekrit"), true, t)
	assertEqual(api.checkBearerAuth("bearer sekrit"), true, t)
	assertEqual(api.checkBearerAuth("Bearer wrong"), false, t)
	assertEqual(api.checkBearerAuth("Basic sekrit"), false, t)
	assertEqual(api.checkBearerAuth("Bearersekrit"), false, t)

	server.config.API.Enabled = false
	assertEqual(api.checkBearerAuth("Bearer sekrit"), false, t)
}

func TestAPIStatus(t *testing.T) {
	api, server := newTestAPI(t)
	server.store.(*memContextStore).contexts["alice"] = "en:es"
	server.cache.Set("alice", Session{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	request.Header.Set("Authorization", "Bearer sekrit")
	api.ServeHTTP(recorder, request)

	assertEqual(recorder.Code, http.StatusOK, t)
	body := recorder.Body.String()
	for _, want := range []string{`"cachedSessions":1`, `"storedContexts":1`, `"backend":"buntdb"`} {
		if !strings.Contains(body, want) {
			t.Errorf("status body %q missing %q", body, want)
		}
	}
}

func TestAPIRejectsUnauthenticated(t *testing.T) {
	api, _ := newTestAPI(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	api.ServeHTTP(recorder, request)

	assertEqual(recorder.Code, http.StatusUnauthorized, t)
}

func TestAPIStatusRejectsPost(t *testing.T) {
	api, _ := newTestAPI(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/status", nil)
	request.Header.Set("Authorization", "Bearer sekrit")
	api.ServeHTTP(recorder, request)

	assertEqual(recorder.Code, http.StatusMethodNotAllowed, t)
}
