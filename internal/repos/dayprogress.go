package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type DayProgressRepo interface {
	// Upsert marks progress for (podID, dayNumber), keyed on the unique
	// pod/day index.
	Upsert(ctx context.Context, tx *gorm.DB, row *types.DayProgress) error
	GetByPodID(ctx context.Context, tx *gorm.DB, podID uuid.UUID) ([]*types.DayProgress, error)
	CountReplied(ctx context.Context, tx *gorm.DB, podID uuid.UUID) (int64, error)
}

type dayProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDayProgressRepo(db *gorm.DB, baseLog *logger.Logger) DayProgressRepo {
	return &dayProgressRepo{db: db, log: baseLog.With("repo", "DayProgressRepo")}
}

func (r *dayProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.DayProgress) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row == nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("pod_id = ? AND day_number = ?", row.PodID, row.DayNumber).
		Assign(map[string]interface{}{"user_replied": row.UserReplied}).
		FirstOrCreate(row).Error
}

func (r *dayProgressRepo) GetByPodID(ctx context.Context, tx *gorm.DB, podID uuid.UUID) ([]*types.DayProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.DayProgress
	if podID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("pod_id = ?", podID).
		Order("day_number ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dayProgressRepo) CountReplied(ctx context.Context, tx *gorm.DB, podID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if podID == uuid.Nil {
		return 0, nil
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.DayProgress{}).
		Where("pod_id = ? AND user_replied = ?", podID, true).
		Count(&count).Error
	return count, err
}
