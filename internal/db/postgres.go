package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/personas"
	"github.com/wellforge/masterclass-backend/internal/types"
	"github.com/wellforge/masterclass-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "masterclass", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.UserTag{},
		&types.Pod{},
		&types.PodMessage{},
		&types.DayProgress{},
		&types.DayTemplate{},
		&types.UserMessageLog{},
		&types.AICallLog{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	return nil
}

// SeedDayTemplates writes the static curriculum into day_template so the rest
// of the system can treat it as ordinary rows. Idempotent.
func (s *PostgresService) SeedDayTemplates(ctx context.Context) error {
	var rows []*types.DayTemplate
	for _, niche := range personas.AllNiches() {
		for _, script := range personas.ScriptFor(niche) {
			rows = append(rows, &types.DayTemplate{
				NicheCategory: niche,
				DayNumber:     script.DayNumber,
				LessonTitle:   script.LessonTitle,
				GapTopic:      script.GapTopic,
				HasOffer:      script.HasOffer,
			})
		}
	}
	s.log.Info("Seeding day templates...", "rows", len(rows))
	return s.db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			for _, row := range rows {
				err := tx.
					Where("niche_category = ? AND day_number = ?", row.NicheCategory, row.DayNumber).
					Assign(map[string]interface{}{
						"lesson_title": row.LessonTitle,
						"gap_topic":    row.GapTopic,
						"has_offer":    row.HasOffer,
					}).
					FirstOrCreate(row).Error
				if err != nil {
					return err
				}
			}
			return nil
		})
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
