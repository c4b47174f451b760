package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"moodtrip/internal/infra"
	"moodtrip/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideKVRepo, provideUsageRepo)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideKVRepo(db *gorm.DB) repositories.KVRepositoryInterface {
	return repositories.NewKVRepository(db)
}

func provideUsageRepo(db *gorm.DB) repositories.UsageStatRepositoryInterface {
	return repositories.NewUsageStatRepository(db)
}
