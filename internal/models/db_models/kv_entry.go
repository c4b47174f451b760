package db_models

import "time"

// KVEntry backs the key-value store contract used for per-user feedback maps
// and locally authored reviews.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
