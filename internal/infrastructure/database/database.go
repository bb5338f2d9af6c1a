package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/config"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/database/migrations"
)

// GormConfig is shared by the application and test databases.
// Timestamps are written in UTC; display code converts to the configured timezone.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Error),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// SetupDatabase abre a conexão com o Postgres, configura o pool e aplica as migrações
func SetupDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	dsn := WithTimezone(cfg.DatabaseURL, cfg.Timezone)
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Prepare(db); err != nil {
		return nil, err
	}

	slog.Info("database ready", "timezone", cfg.Timezone, "max_open_conns", cfg.DBMaxOpenConns)
	return db, nil
}

// Prepare aplica migrações e índices
func Prepare(db *gorm.DB) error {
	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	if err := migrations.OptimizePerformanceIndexes(db); err != nil {
		return fmt.Errorf("failed to add optimized indexes: %w", err)
	}

	return nil
}
