// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/lost1n/lingo/bot"
	"github.com/lost1n/lingo/bot/logger"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

func main() {
	bot.SetVersionString(version, commit)
	usage := `lingo.
Usage:
	lingo initdb [--conf <filename>] [--quiet]
	lingo run [--conf <filename>] [--quiet]
	lingo -h | --help
	lingo --version
Options:
	--conf <filename>  Configuration file to use [default: lingo.yaml].
	--quiet            Don't show startup/shutdown lines.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, bot.Ver)

	configfile := arguments["--conf"].(string)
	config, err := bot.LoadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}

	if arguments["initdb"].(bool) {
		if config.Datastore.Backend != "buntdb" {
			log.Fatal("initdb only applies to the buntdb backend")
		}
		err = bot.InitDB(config.Datastore.Path)
		if err != nil {
			log.Fatal("Error while initializing db:", err.Error())
		}
		if !arguments["--quiet"].(bool) {
			log.Println("database initialized: ", config.Datastore.Path)
		}
	} else if arguments["run"].(bool) {
		if !arguments["--quiet"].(bool) {
			logman.Info("server", fmt.Sprintf("%s starting", bot.Ver))
		}

		server, err := bot.NewServer(config, logman)
		if err != nil {
			logman.Error("server", fmt.Sprintf("Could not load server: %s", err.Error()))
			os.Exit(1)
		}
		server.Run()
	}
}
