package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownStorage error if mods.storage is neither db nor file.
	ErrUnknownStorage = errors.New("toml config mods.storage must be db or file")

	// ErrModsDirEmpty error if file storage is used without mods.dir.
	ErrModsDirEmpty = errors.New("toml config mods.dir can not be empty with file storage")
)
