// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/okzk/sdnotify"

	"github.com/lost1n/lingo/bot/flock"
	"github.com/lost1n/lingo/bot/logger"
	"github.com/lost1n/lingo/bot/mysql"
)

var (
	// ServerExitSignals are the signals the server will exit on.
	ServerExitSignals = []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
)

// Server owns the webhook listener, the admin API, the session cache,
// and the context store, and glues them to the message handler.
type Server struct {
	config       *Config
	configMutex  sync.RWMutex
	rehashMutex  sync.Mutex
	logger       *logger.Manager
	store        ContextStore
	dbFlock      flock.Flocker
	cache        *BoundedCache
	repo         *ContextRepo
	handler      *MessageHandler
	signals      chan os.Signal
	rehashSignal chan os.Signal
	startedAt    time.Time
	exited       chan struct{}
}

// NewServer returns a new Server instance with a database opened and a
// handler wired, ready to Run.
func NewServer(config *Config, log *logger.Manager) (*Server, error) {
	server := &Server{
		logger:       log,
		signals:      make(chan os.Signal, len(ServerExitSignals)),
		rehashSignal: make(chan os.Signal, 1),
		startedAt:    time.Now(),
		exited:       make(chan struct{}),
	}

	store, dbFlock, err := openContextStore(config, log)
	if err != nil {
		return nil, err
	}
	server.store = store
	server.dbFlock = dbFlock

	server.cache = NewBoundedCache(config.Cache.MaxEntries)
	server.repo = NewContextRepo(server.cache, server.store)

	if err := server.applyConfig(config); err != nil {
		store.Close()
		if dbFlock != nil {
			dbFlock.Unlock()
		}
		return nil, err
	}

	// Attempt to clean up when receiving these signals.
	signal.Notify(server.signals, ServerExitSignals...)
	signal.Notify(server.rehashSignal, syscall.SIGHUP)

	return server, nil
}

func openContextStore(config *Config, log *logger.Manager) (ContextStore, flock.Flocker, error) {
	switch config.Datastore.Backend {
	case "mysql":
		db := new(mysql.MySQL)
		db.Initialize(log, config.Datastore.MySQL)
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		return db, nil, nil
	default:
		dbFlock, err := flock.TryAcquireFlock(config.Datastore.Path + ".lock")
		if err != nil {
			return nil, nil, fmt.Errorf("Failed to acquire datastore lock (is another lingo instance running?): %v", err)
		}
		store, err := OpenDatabase(config.Datastore.Path)
		if err != nil {
			if dbFlock != nil {
				dbFlock.Unlock()
			}
			return nil, nil, err
		}
		return NewBuntContextStore(store), dbFlock, nil
	}
}

// applyConfig swaps in a new configuration and rebuilds the handler's
// collaborators. The cache, repo, and store persist across rehashes.
func (server *Server) applyConfig(config *Config) error {
	oldConfig := server.Config()
	if oldConfig != nil {
		// enforce configs that can't be changed after launch:
		if oldConfig.Server.Listen != config.Server.Listen {
			return fmt.Errorf("Listen address cannot be changed after launching the server, rehash aborted")
		}
		if oldConfig.Datastore.Backend != config.Datastore.Backend {
			return fmt.Errorf("Datastore backend cannot be changed after launching the server, rehash aborted")
		}
	}

	messenger := NewMessengerClient(config.Platform.GraphURL, config.Platform.PageToken, config.Translator.timeout)
	translator := NewGoogleTranslator(config.Translator.URL, config.Translator.Key, config.Translator.timeout)
	tracker := NewLoggerTracker(server.logger)

	handler := NewMessageHandler(
		server.logger, server.cache, server.repo,
		messenger, translator, messenger, tracker,
		config.Platform.PageID, config.Translator.MaxReplyLength,
	)

	server.configMutex.Lock()
	server.config = config
	server.handler = handler
	server.configMutex.Unlock()

	return nil
}

// Run starts the webhook and API listeners and blocks until shutdown.
func (server *Server) Run() {
	defer server.store.Close()

	config := server.Config()

	mux := http.NewServeMux()
	mux.HandleFunc(config.Server.WebhookPath, server.handleWebhook)
	httpServer := &http.Server{Addr: config.Server.Listen, Handler: mux}
	go func() {
		server.logger.Info("server", "Webhook listening", config.Server.Listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			server.logger.Error("server", "Webhook listener failed", err.Error())
			server.Shutdown()
		}
	}()

	if config.API.Enabled {
		apiServer := &http.Server{Addr: config.API.Listen, Handler: newAPIHandler(server)}
		go func() {
			server.logger.Info("server", "Admin API listening", config.API.Listen)
			if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				server.logger.Error("server", "Admin API listener failed", err.Error())
			}
		}()
	}

	sdnotify.Ready()

	done := false
	for !done {
		select {
		case <-server.exited:
			done = true

		case <-server.signals:
			server.Shutdown()
			done = true

		case <-server.rehashSignal:
			server.logger.Info("server", "Rehashing due to SIGHUP")
			go func() {
				if err := server.rehash(); err != nil {
					server.logger.Error("server", fmt.Sprintln("Failed to rehash:", err.Error()))
				}
			}()
		}
	}

	httpServer.Close()
	if server.dbFlock != nil {
		server.dbFlock.Unlock()
	}
}

// Shutdown stops the server.
func (server *Server) Shutdown() {
	sdnotify.Stopping()
	server.logger.Info("server", "Stopping server")
	select {
	case <-server.exited:
	default:
		close(server.exited)
	}
}

// rehash reloads the configuration file and applies what can change at
// runtime. Only one rehash runs at a time.
func (server *Server) rehash() error {
	server.logger.Debug("server", "Starting rehash")

	server.rehashMutex.Lock()
	defer server.rehashMutex.Unlock()

	config, err := LoadConfig(server.Config().Filename)
	if err != nil {
		return fmt.Errorf("Error loading config file: %s", err.Error())
	}

	if err := server.logger.ApplyConfig(config.Logging); err != nil {
		return fmt.Errorf("Error applying logging config: %s", err.Error())
	}

	if err := server.applyConfig(config); err != nil {
		return fmt.Errorf("Error applying config changes: %s", err.Error())
	}

	server.logger.Info("server", "Rehash complete")
	return nil
}

// handleWebhook serves both halves of the platform webhook contract:
// the GET subscription handshake and the POST event delivery.
func (server *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		server.handleWebhookVerify(w, r)
	case http.MethodPost:
		server.handleWebhookEvents(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (server *Server) handleWebhookVerify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("hub.mode") == "subscribe" &&
		query.Get("hub.verify_token") == server.Config().Platform.VerifyToken {
		w.Write([]byte(query.Get("hub.challenge")))
		return
	}
	server.logger.Warning("server", errBadVerifyToken.Error(), r.RemoteAddr)
	http.Error(w, "Forbidden", http.StatusForbidden)
}

func (server *Server) handleWebhookEvents(w http.ResponseWriter, r *http.Request) {
	config := server.Config()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, config.MaxRequestBytes()))
	if err != nil {
		server.logger.Warning("server", "could not read webhook body", err.Error())
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return
	}

	if !validSignature(r.Header.Get("X-Hub-Signature-256"), body, config.Platform.AppSecret) {
		server.logger.Warning("server", errBadSignature.Error(), r.RemoteAddr)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var envelope webhookBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		server.logger.Warning("server", "could not parse webhook body", err.Error())
		// malformed but authenticated; acknowledge so the platform
		// doesn't redeliver it forever
		w.WriteHeader(http.StatusOK)
		return
	}

	handler := server.Handler()
	for _, entry := range envelope.Entry {
		for _, event := range entry.Messaging {
			go handler.HandleEvent(event)
		}
	}

	w.WriteHeader(http.StatusOK)
}
