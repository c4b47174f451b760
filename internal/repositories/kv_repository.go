package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moodtrip/internal/models/db_models"
)

// KVRepositoryInterface is the key-value contract the feedback and review
// services build on. Get returns "" (and no error) for a missing key.
type KVRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	var entry db_models.KVEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	entry := db_models.KVEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&db_models.KVEntry{}, "key = ?", key).Error
}
