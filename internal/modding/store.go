package modding

// ConfigStore persists the raw config document of a mod.
type ConfigStore interface {
	// Load returns ErrConfigNotFound if the mod has not stored a config yet.
	Load(modID string) ([]byte, error)
	Save(modID string, data []byte) error
	// Delete returns ErrConfigNotFound if there is nothing to delete.
	Delete(modID string) error
}
