package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/db"
	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
	"github.com/ForageFantasy/ForageFantasy/internal/logger/adapter/stdlogger"
	"github.com/ForageFantasy/ForageFantasy/internal/modconfig"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// Mods is the loaded mod set.
type Mods struct {
	Registry     *modding.Registry
	Menu         *gmcm.Menu
	Forage       *modding.Mod
	ForageConfig *modconfig.Config
}

// OpenStore returns the config store selected by Mods.Storage.
func OpenStore(cfg *config.Config) (modding.ConfigStore, error) {
	if cfg.Mods.Storage == config.StorageFile {
		return modding.NewFileStore(cfg.Mods.Dir), nil
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	return db.NewStore(conn), nil
}

// NewForageMod registers ForageFantasy with registry.
func NewForageMod(registry *modding.Registry, store modding.ConfigStore) (*modding.Mod, error) {
	manifest := modconfig.Manifest()

	if err := registry.Register(manifest, nil); err != nil {
		return nil, err
	}

	helper := modding.NewHelper(manifest.UniqueID, registry, store)

	return modding.NewMod(manifest, helper, stdlogger.NewFor(manifest.UniqueID)), nil
}

// LoadMods loads the config menu extension when enabled and ForageFantasy.
// The menu is bound once every mod is loaded.
func LoadMods(cfg *config.Config, store modding.ConfigStore) (*Mods, error) {
	registry := modding.NewRegistry()
	menu := gmcm.NewMenu()

	if cfg.Mods.ConfigMenu {
		if err := registry.Register(gmcm.Manifest(), menu); err != nil {
			return nil, errors.Wrap(err, "load config menu")
		}
	}

	mod, err := NewForageMod(registry, store)
	if err != nil {
		return nil, errors.Wrap(err, "load ForageFantasy")
	}

	forageConfig, err := modconfig.Load(mod)
	if err != nil {
		return nil, errors.Wrap(err, "load ForageFantasy")
	}

	for _, m := range registry.GetAll() {
		log.Info().Str("mod", m.UniqueID).Str("version", m.Version).Msgf("loaded %s", m.Name)
	}

	modconfig.SetUpModConfigMenu(forageConfig, mod)

	return &Mods{
		Registry:     registry,
		Menu:         menu,
		Forage:       mod,
		ForageConfig: forageConfig,
	}, nil
}
