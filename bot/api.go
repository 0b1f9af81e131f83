// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

func newAPIHandler(server *Server) http.Handler {
	api := &adminAPI{
		server: server,
		mux:    http.NewServeMux(),
	}

	api.mux.HandleFunc("/v1/rehash", requireMethod(http.MethodPost, api.handleRehash))
	api.mux.HandleFunc("/v1/status", requireMethod(http.MethodGet, api.handleStatus))

	return api
}

type adminAPI struct {
	server *Server
	mux    *http.ServeMux
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (a *adminAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer a.server.logger.Debug("api", r.URL.Path)

	if a.checkBearerAuth(r.Header.Get("Authorization")) {
		a.mux.ServeHTTP(w, r)
	} else {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
}

func (a *adminAPI) checkBearerAuth(authHeader string) (authorized bool) {
	if authHeader == "" {
		return false
	}
	config := a.server.Config()
	if !config.API.Enabled {
		return false
	}
	spaceIdx := strings.IndexByte(authHeader, ' ')
	if spaceIdx < 0 {
		return false
	}
	if !strings.EqualFold("Bearer", authHeader[:spaceIdx]) {
		return false
	}
	providedTokenBytes := []byte(authHeader[spaceIdx+1:])
	for _, tokenBytes := range config.API.bearerTokenBytes {
		if subtle.ConstantTimeCompare(tokenBytes, providedTokenBytes) == 1 {
			return true
		}
	}
	return false
}

func (a *adminAPI) writeJSONResponse(response any, w http.ResponseWriter, r *http.Request) {
	j, err := json.Marshal(response)
	if err == nil {
		j = append(j, '\n') // less annoying in curl output
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(j)
	} else {
		a.server.logger.Error("internal", "failed to serialize API response", r.URL.String(), err.Error())
		http.Error(w, fmt.Sprintf("failed to serialize json response: %v", err), http.StatusInternalServerError)
	}
}

type apiGenericResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (a *adminAPI) handleRehash(w http.ResponseWriter, r *http.Request) {
	var response apiGenericResponse
	err := a.server.rehash()
	if err == nil {
		response.Success = true
	} else {
		response.Success = false
		response.Error = err.Error()
	}
	a.writeJSONResponse(response, w, r)
}

type apiStatusResponse struct {
	Uptime         string `json:"uptime"`
	CachedSessions int    `json:"cachedSessions"`
	StoredContexts int    `json:"storedContexts"`
	Backend        string `json:"backend"`
}

func (a *adminAPI) handleStatus(w http.ResponseWriter, r *http.Request) {
	count, err := a.server.store.CountContexts()
	if err != nil {
		a.server.logger.Error("api", "could not count contexts", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.writeJSONResponse(apiStatusResponse{
		Uptime:         time.Since(a.server.startedAt).Round(time.Second).String(),
		CachedSessions: a.server.cache.Len(),
		StoredContexts: count,
		Backend:        a.server.Config().Datastore.Backend,
	}, w, r)
}
