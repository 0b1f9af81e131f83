// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

func (server *Server) Config() *Config {
	server.configMutex.RLock()
	defer server.configMutex.RUnlock()
	return server.config
}

func (server *Server) Handler() *MessageHandler {
	server.configMutex.RLock()
	defer server.configMutex.RUnlock()
	return server.handler
}
