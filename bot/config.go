// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"gopkg.in/yaml.v2"

	"github.com/lost1n/lingo/bot/logger"
	"github.com/lost1n/lingo/bot/mysql"
)

// here's how this works: exported (capitalized) members of the config
// structs are defined in the YAML file and deserialized directly from
// there. They may be postprocessed and overwritten by LoadConfig.
// Unexported (lowercase) members are derived from the exported members
// in LoadConfig.

type ServerConfig struct {
	Listen                string
	WebhookPath           string `yaml:"webhook-path"`
	MaxRequestBytesString string `yaml:"max-request-bytes"`
	maxRequestBytes       int64
}

type PlatformConfig struct {
	GraphURL    string `yaml:"graph-url"`
	PageToken   string `yaml:"page-token"`
	VerifyToken string `yaml:"verify-token"`
	AppSecret   string `yaml:"app-secret"`
	PageID      string `yaml:"page-id"`
}

type TranslatorConfig struct {
	URL            string
	Key            string
	TimeoutString  string `yaml:"timeout"`
	timeout        time.Duration
	MaxReplyLength int `yaml:"max-reply-length"`
}

type DatastoreConfig struct {
	Backend string
	Path    string
	MySQL   mysql.Config
}

type CacheConfig struct {
	MaxEntries int `yaml:"max-entries"`
}

type APIConfig struct {
	Enabled          bool
	Listen           string
	BearerTokens     []string `yaml:"bearer-tokens"`
	bearerTokenBytes [][]byte
}

// Config defines the overall configuration.
type Config struct {
	Filename string `yaml:"-"`

	Server     ServerConfig
	Platform   PlatformConfig
	Translator TranslatorConfig
	Datastore  DatastoreConfig
	Cache      CacheConfig
	API        APIConfig
	Logging    []logger.LoggingConfig
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	config.Filename = filename

	if config.Server.Listen == "" {
		return nil, errListenMissing
	}
	if config.Platform.PageToken == "" {
		return nil, errPageTokenMissing
	}
	if config.Platform.VerifyToken == "" {
		return nil, errVerifyTokenMissing
	}
	if config.Platform.AppSecret == "" {
		return nil, errAppSecretMissing
	}
	if config.Platform.PageID == "" {
		return nil, errPageIDMissing
	}
	if config.Translator.Key == "" {
		return nil, errTranslatorKeyMissing
	}

	if config.Server.WebhookPath == "" {
		config.Server.WebhookPath = "/webhook"
	}
	if config.Server.MaxRequestBytesString != "" {
		maxRequestBytes, err := bytefmt.ToBytes(config.Server.MaxRequestBytesString)
		if err != nil {
			return nil, fmt.Errorf("Could not parse max-request-bytes: %s", err.Error())
		}
		config.Server.maxRequestBytes = int64(maxRequestBytes)
	} else {
		config.Server.maxRequestBytes = 64 * 1024
	}

	if config.Translator.TimeoutString != "" {
		config.Translator.timeout, err = time.ParseDuration(config.Translator.TimeoutString)
		if err != nil {
			return nil, fmt.Errorf("Could not parse translator timeout: %s", err.Error())
		}
	} else {
		config.Translator.timeout = 10 * time.Second
	}
	if config.Translator.MaxReplyLength == 0 {
		config.Translator.MaxReplyLength = maxTextReplyLength
	}

	switch config.Datastore.Backend {
	case "", "buntdb":
		config.Datastore.Backend = "buntdb"
		if config.Datastore.Path == "" {
			return nil, errDatastorePathMissing
		}
	case "mysql":
		if config.Datastore.MySQL.TimeoutString != "" {
			config.Datastore.MySQL.Timeout, err = time.ParseDuration(config.Datastore.MySQL.TimeoutString)
			if err != nil {
				return nil, fmt.Errorf("Could not parse mysql timeout: %s", err.Error())
			}
		}
		if config.Datastore.MySQL.ConnMaxLifetimeString != "" {
			config.Datastore.MySQL.ConnMaxLifetime, err = time.ParseDuration(config.Datastore.MySQL.ConnMaxLifetimeString)
			if err != nil {
				return nil, fmt.Errorf("Could not parse mysql conn-max-lifetime: %s", err.Error())
			}
		}
	default:
		return nil, errDatastoreBackend
	}

	if config.Cache.MaxEntries == 0 {
		config.Cache.MaxEntries = DefaultCacheCapacity
	}

	config.API.bearerTokenBytes = make([][]byte, len(config.API.BearerTokens))
	for i, token := range config.API.BearerTokens {
		config.API.bearerTokenBytes[i] = []byte(token)
	}

	// process logging
	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return nil, fmt.Errorf("Logging configuration specifies 'file' method but 'filename' is empty")
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, fmt.Errorf("Encountered logging type '-' with no type to exclude")
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, fmt.Errorf("Logging configuration needs at least one type")
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	return config, nil
}

// MaxRequestBytes returns the webhook request body limit.
func (config *Config) MaxRequestBytes() int64 {
	return config.Server.maxRequestBytes
}
