package modding

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Helper gives a mod access to its config and the mod registry.
type Helper struct {
	ModRegistry *Registry

	modID string
	store ConfigStore
}

// NewHelper creates the helper of modID.
func NewHelper(modID string, registry *Registry, store ConfigStore) *Helper {
	return &Helper{
		ModRegistry: registry,
		modID:       modID,
		store:       store,
	}
}

// ReadConfig decodes the stored config over v. v should hold the defaults:
// fields missing in the stored document keep them, and if nothing is stored
// yet v is written as the initial config.
func (h *Helper) ReadConfig(v any) error {
	if h.store == nil {
		return ErrStoreNil
	}

	data, err := h.store.Load(h.modID)
	if errors.Is(err, ErrConfigNotFound) {
		return h.WriteConfig(v)
	}

	if err != nil {
		return err
	}

	return errors.Wrapf(json.Unmarshal(data, v), "decode config of %s", h.modID)
}

// DeleteConfig removes the stored config, so the next ReadConfig starts from
// the defaults again.
func (h *Helper) DeleteConfig() error {
	if h.store == nil {
		return ErrStoreNil
	}

	return h.store.Delete(h.modID)
}

// WriteConfig stores v as the mod config.
func (h *Helper) WriteConfig(v any) error {
	if h.store == nil {
		return ErrStoreNil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode config of %s", h.modID)
	}

	return h.store.Save(h.modID, data)
}
