package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreEntry is one persisted collection: a key such as "kc_rooms" mapped to
// the JSON-serialized collection. The whole blob is rewritten on every
// mutation of its collection.
type StoreEntry struct {
	Key       string         `gorm:"primaryKey;column:store_key;type:varchar(64)" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
