package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

// visibleClause is the single source of truth for which messages the client
// may see: delivered, written by the user, or past their schedule.
const visibleClause = "(sent_at IS NOT NULL OR sender_type = ? OR scheduled_for <= ?)"

type PodMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.PodMessage) ([]*types.PodMessage, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.PodMessage, error)
	// ListVisibleBefore returns up to limit visible messages for a pod,
	// newest first. A non-nil before bounds CreatedAt strictly from above.
	ListVisibleBefore(ctx context.Context, tx *gorm.DB, podID uuid.UUID, before *time.Time, now time.Time, limit int) ([]*types.PodMessage, error)
	// ListLastSent returns the most recent visible messages in chronological
	// order, for prompt context.
	ListLastSent(ctx context.Context, tx *gorm.DB, podID uuid.UUID, now time.Time, limit int) ([]*types.PodMessage, error)
}

type podMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPodMessageRepo(db *gorm.DB, baseLog *logger.Logger) PodMessageRepo {
	return &podMessageRepo{db: db, log: baseLog.With("repo", "PodMessageRepo")}
}

func (r *podMessageRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.PodMessage) ([]*types.PodMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.PodMessage{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *podMessageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.PodMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.PodMessage
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *podMessageRepo) ListVisibleBefore(ctx context.Context, tx *gorm.DB, podID uuid.UUID, before *time.Time, now time.Time, limit int) ([]*types.PodMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.PodMessage
	if podID == uuid.Nil || limit <= 0 {
		return results, nil
	}
	q := transaction.WithContext(ctx).
		Where("pod_id = ?", podID).
		Where(visibleClause, types.SenderUser, now)
	if before != nil {
		q = q.Where("created_at < ?", *before)
	}
	if err := q.Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *podMessageRepo) ListLastSent(ctx context.Context, tx *gorm.DB, podID uuid.UUID, now time.Time, limit int) ([]*types.PodMessage, error) {
	newest, err := r.ListVisibleBefore(ctx, tx, podID, nil, now, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(newest)-1; i < j; i, j = i+1, j-1 {
		newest[i], newest[j] = newest[j], newest[i]
	}
	return newest, nil
}
