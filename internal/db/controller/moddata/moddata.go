// Package moddata provides CRUD operations on the documents mods store.
package moddata

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ForageFantasy/ForageFantasy/internal/db/models"
)

const (
	modKeyQueryPattern = "mod_id = ? AND data_key = ?"
	modQueryPattern    = "mod_id = ?"
)

var (
	// ErrNotFound is returned when a mod has no document under the key.
	ErrNotFound = errors.New("mod data not found")
	// ErrModIDEmpty is returned for an empty mod ID.
	ErrModIDEmpty = errors.New("mod id cannot be empty")
	// ErrKeyEmpty is returned for an empty key.
	ErrKeyEmpty = errors.New("mod data key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, modID, key string) error {
	switch {
	case db == nil:
		return ErrDBNil
	case modID == "":
		return ErrModIDEmpty
	case key == "":
		return ErrKeyEmpty
	}

	return nil
}

// Get retrieves the document of modID under key.
func Get(db *gorm.DB, modID, key string) (*models.ModData, error) {
	if err := check(db, modID, key); err != nil {
		return nil, err
	}

	var data models.ModData
	result := db.Where(modKeyQueryPattern, modID, key).First(&data)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &data, nil
}

// GetAll retrieves every document of modID ordered by key.
func GetAll(db *gorm.DB, modID string) ([]models.ModData, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if modID == "" {
		return nil, ErrModIDEmpty
	}

	var all []models.ModData
	result := db.Where(modQueryPattern, modID).Order("data_key").Find(&all)
	if result.Error != nil {
		return nil, result.Error
	}

	return all, nil
}

// Set creates or replaces the document of modID under key.
func Set(db *gorm.DB, modID, key string, value []byte) (*models.ModData, error) {
	if err := check(db, modID, key); err != nil {
		return nil, err
	}

	data := &models.ModData{
		ModID: modID,
		Key:   key,
		Value: value,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mod_id"}, {Name: "data_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(data)
	if result.Error != nil {
		return nil, result.Error
	}

	return Get(db, modID, key)
}

// Delete deletes the document of modID under key.
func Delete(db *gorm.DB, modID, key string) error {
	if err := check(db, modID, key); err != nil {
		return err
	}

	result := db.Where(modKeyQueryPattern, modID, key).Delete(&models.ModData{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
