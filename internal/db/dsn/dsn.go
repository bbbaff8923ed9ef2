// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
)

// Database engines understood by Create.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DefaultSQLiteFile is used when the sqlite engine has no file configured.
const DefaultSQLiteFile = "forage-fantasy.db"

// Create builds the Data Source Name for the configured engine.
func Create(dbCfg *config.Config) string {
	switch dbCfg.DB.GormEngine {
	case EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.Name,
			dbCfg.DB.Extras,
		)
	case EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
		)
		if dbCfg.DB.Extras != "" {
			out += " " + dbCfg.DB.Extras
		}

		return out
	default:
		if dbCfg.DB.File == "" {
			return DefaultSQLiteFile
		}

		return dbCfg.DB.File
	}
}
