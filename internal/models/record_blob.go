package models

import "gorm.io/datatypes"

// RecordBlob holds one whole-collection JSON snapshot. Every save replaces
// the value in full; there is no partial update.
type RecordBlob struct {
	Owner string `gorm:"primaryKey;size:255"`
	Key   string `gorm:"primaryKey;size:64"`
	Value datatypes.JSON
}
