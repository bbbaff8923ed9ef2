package modding

import "errors"

var (
	// ErrConfigNotFound is returned by a ConfigStore when a mod has no stored config yet.
	ErrConfigNotFound = errors.New("mod config not found")

	// ErrModAlreadyLoaded is returned when a unique ID is registered twice.
	ErrModAlreadyLoaded = errors.New("mod already loaded")

	// ErrInvalidManifest is returned when a manifest misses required fields.
	ErrInvalidManifest = errors.New("invalid mod manifest")

	// ErrStoreNil is returned by a Helper created without a ConfigStore.
	ErrStoreNil = errors.New("config store is nil")
)
