// Package models contains database model definitions.
package models

import "time"

// ModData is one named document a mod stored, e.g. its config.
type ModData struct {
	ID        uint64 `gorm:"primaryKey"`
	ModID     string `gorm:"size:191;uniqueIndex:idx_mod_key;not null"`
	Key       string `gorm:"column:data_key;size:191;uniqueIndex:idx_mod_key;not null"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (ModData) TableName() string {
	return "mod_data"
}
