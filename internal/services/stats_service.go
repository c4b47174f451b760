package services

import (
	"context"
	"log"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

type StatsServiceInterface interface {
	ListRecent(ctx context.Context, page, pageSize int) ([]db_models.UsageStat, error)
}

type StatsService struct {
	usageRepo repositories.UsageStatRepositoryInterface
}

func NewStatsService(usageRepo repositories.UsageStatRepositoryInterface) StatsServiceInterface {
	return &StatsService{usageRepo: usageRepo}
}

func (s *StatsService) ListRecent(ctx context.Context, page, pageSize int) ([]db_models.UsageStat, error) {
	stats, err := s.usageRepo.ListRecent(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing usage stats: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return stats, nil
}
