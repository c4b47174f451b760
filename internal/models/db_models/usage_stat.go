package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UsageStat is one coarse record per recommendation or search call.
type UsageStat struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID         string         `gorm:"index"`
	Mood           string
	Query          string
	ProviderErrors pq.StringArray `gorm:"type:text[]"`
	ResultCount    int
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}
