package config

import (
	"github.com/ForageFantasy/ForageFantasy/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Mods      Mods
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Host           string // listening host, empty for all interfaces
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
}

// Mods holds the mod host settings.
type Mods struct {
	Dir        string // mod folder, used by file storage
	Storage    string // db or file
	ConfigMenu bool   // load the config menu extension
}
