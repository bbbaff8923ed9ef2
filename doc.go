// Package main provides the entry point of forage-fantasy. It loads the
// ForageFantasy mod config, clamps out of range values back into their valid
// ranges and binds every setting to the config menu, which is served as a
// JSON API by a fiber web server. Mod configs are kept in a gorm database
// (sqlite, mysql or postgres) or as config.json files in the mods folder.
package main
