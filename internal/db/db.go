// Package db opens the gorm database and adapts the mod data table to a config store.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/db/dsn"
	"github.com/ForageFantasy/ForageFantasy/internal/db/models"
)

// ErrUnknownEngine is returned for a GormEngine that has no driver.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case "", dsn.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	case dsn.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case dsn.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	}

	return nil, errors.Wrap(ErrUnknownEngine, cfg.DB.GormEngine)
}

// Open connects to the configured database and migrates the mod data table.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = conn.AutoMigrate(&models.ModData{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	log.Debug().Str("engine", dialector.Name()).Msg("database ready")

	return conn, nil
}
