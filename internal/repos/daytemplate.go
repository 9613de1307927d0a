package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type DayTemplateRepo interface {
	GetByNicheAndDay(ctx context.Context, tx *gorm.DB, niche string, day int) (*types.DayTemplate, error)
	CountByNiche(ctx context.Context, tx *gorm.DB, niche string) (int64, error)
	// UpsertMany seeds curriculum rows, keyed on the unique (niche, day) index.
	UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.DayTemplate) error
}

type dayTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDayTemplateRepo(db *gorm.DB, baseLog *logger.Logger) DayTemplateRepo {
	return &dayTemplateRepo{db: db, log: baseLog.With("repo", "DayTemplateRepo")}
}

func (r *dayTemplateRepo) GetByNicheAndDay(ctx context.Context, tx *gorm.DB, niche string, day int) (*types.DayTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.DayTemplate
	err := transaction.WithContext(ctx).
		Where("niche_category = ? AND day_number = ?", niche, day).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *dayTemplateRepo) CountByNiche(ctx context.Context, tx *gorm.DB, niche string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.DayTemplate{}).
		Where("niche_category = ?", niche).
		Count(&count).Error
	return count, err
}

func (r *dayTemplateRepo) UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.DayTemplate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "niche_category"}, {Name: "day_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"lesson_title", "gap_topic", "has_offer"}),
		}).
		Create(&rows).Error
}
