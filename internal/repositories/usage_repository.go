package repositories

import (
	"context"

	"gorm.io/gorm"
	"moodtrip/internal/models/db_models"
)

type UsageStatRepositoryInterface interface {
	CreateUsageStat(ctx context.Context, stat *db_models.UsageStat) error
	ListRecent(ctx context.Context, page, pageSize int) ([]db_models.UsageStat, error)
}

type UsageStatRepository struct {
	db *gorm.DB
}

func NewUsageStatRepository(db *gorm.DB) *UsageStatRepository {
	return &UsageStatRepository{db: db}
}

func (r *UsageStatRepository) CreateUsageStat(ctx context.Context, stat *db_models.UsageStat) error {
	return r.db.WithContext(ctx).Create(stat).Error
}

func (r *UsageStatRepository) ListRecent(ctx context.Context, page, pageSize int) ([]db_models.UsageStat, error) {
	var stats []db_models.UsageStat
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&stats).Error
	return stats, err
}
