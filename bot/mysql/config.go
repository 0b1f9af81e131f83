// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package mysql

import "time"

type Config struct {
	Enabled         bool
	Host            string
	Port            int
	SocketPath      string `yaml:"socket-path"`
	User            string
	Password        string
	Database        string
	TimeoutString         string        `yaml:"timeout"`
	Timeout               time.Duration `yaml:"timeout-real"`
	MaxConns              int           `yaml:"max-conns"`
	ConnMaxLifetimeString string        `yaml:"conn-max-lifetime"`
	ConnMaxLifetime       time.Duration `yaml:"conn-max-lifetime-real"`
}
