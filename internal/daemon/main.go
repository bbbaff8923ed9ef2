// Package daemon wires the mod host, the config menu and the web service.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	mods       *Mods
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it was shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf("%s:%d", d.cfg.Webserver.Host, d.cfg.Webserver.Port))
}

// Mods returns the loaded mods.
func (d *Daemon) Mods() *Mods {
	return d.mods
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	mods, err := LoadMods(cfg, store)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("storage", cfg.Mods.Storage).
		Bool("configMenu", cfg.Mods.ConfigMenu).
		Msg("daemon ready")

	return &Daemon{
		cfg:        cfg,
		mods:       mods,
		webService: web.New(cfg, mods.Menu),
	}, nil
}
