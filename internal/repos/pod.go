package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type PodRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Pod) (*types.Pod, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Pod, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error)
}

type podRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPodRepo(db *gorm.DB, baseLog *logger.Logger) PodRepo {
	return &podRepo{db: db, log: baseLog.With("repo", "PodRepo")}
}

func (r *podRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Pod) (*types.Pod, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *podRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Pod, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Pod
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *podRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.Pod
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
