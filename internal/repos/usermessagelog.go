package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type UserMessageLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.UserMessageLog) ([]*types.UserMessageLog, error)
}

type userMessageLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserMessageLogRepo(db *gorm.DB, baseLog *logger.Logger) UserMessageLogRepo {
	return &userMessageLogRepo{db: db, log: baseLog.With("repo", "UserMessageLogRepo")}
}

func (r *userMessageLogRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.UserMessageLog) ([]*types.UserMessageLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.UserMessageLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
