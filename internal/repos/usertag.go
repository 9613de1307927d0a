package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type UserTagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.UserTag) ([]*types.UserTag, error)
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserTag, error)
}

type userTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTagRepo(db *gorm.DB, baseLog *logger.Logger) UserTagRepo {
	return &userTagRepo{db: db, log: baseLog.With("repo", "UserTagRepo")}
}

func (r *userTagRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.UserTag) ([]*types.UserTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.UserTag{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userTagRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.UserTag
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
