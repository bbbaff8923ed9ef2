package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ForageFantasy/ForageFantasy/internal/db/controller/moddata"
	"github.com/ForageFantasy/ForageFantasy/internal/db/models"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// ConfigKey is the mod data key configs are stored under.
const ConfigKey = "config"

// Store keeps mod configs in the mod_data table.
type Store struct {
	db *gorm.DB
}

var _ modding.ConfigStore = (*Store)(nil)

// NewStore returns a Store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load implements modding.ConfigStore.
func (s *Store) Load(modID string) ([]byte, error) {
	data, err := moddata.Get(s.db, modID, ConfigKey)
	if errors.Is(err, moddata.ErrNotFound) {
		return nil, modding.ErrConfigNotFound
	}

	if err != nil {
		return nil, err
	}

	return data.Value, nil
}

// Delete implements modding.ConfigStore.
func (s *Store) Delete(modID string) error {
	err := moddata.Delete(s.db, modID, ConfigKey)
	if errors.Is(err, moddata.ErrNotFound) {
		return modding.ErrConfigNotFound
	}

	return err
}

// Documents returns every document modID stored, ordered by key.
func (s *Store) Documents(modID string) ([]models.ModData, error) {
	return moddata.GetAll(s.db, modID)
}

// Save implements modding.ConfigStore.
func (s *Store) Save(modID string, data []byte) error {
	_, err := moddata.Set(s.db, modID, ConfigKey, data)

	return err
}
