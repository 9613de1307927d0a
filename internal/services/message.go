package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/repos"
	"github.com/wellforge/masterclass-backend/internal/types"
)

const (
	defaultPageSize = 30
	maxPageSize     = 100
)

// MessageList is one page of visible messages in chronological order.
// OldestMessageID is the cursor for the next (older) page.
type MessageList struct {
	Messages        []*types.PodMessage
	HasMore         bool
	OldestMessageID *uuid.UUID
}

type MessageService interface {
	ListMessages(ctx context.Context, tx *gorm.DB, podID uuid.UUID, cursor *uuid.UUID, limit int) (*MessageList, error)
}

type messageService struct {
	db       *gorm.DB
	log      *logger.Logger
	messages repos.PodMessageRepo
}

func NewMessageService(db *gorm.DB, baseLog *logger.Logger, messageRepo repos.PodMessageRepo) MessageService {
	return &messageService{
		db:       db,
		log:      baseLog.With("service", "MessageService"),
		messages: messageRepo,
	}
}

func (s *messageService) ListMessages(ctx context.Context, tx *gorm.DB, podID uuid.UUID, cursor *uuid.UUID, limit int) (*MessageList, error) {
	if podID == uuid.Nil {
		return nil, fmt.Errorf("pod id required")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	now := time.Now().UTC()

	// The cursor is a message id; paging keys off its CreatedAt, strictly
	// earlier. An unknown cursor falls back to the newest page.
	var before *time.Time
	if cursor != nil && *cursor != uuid.Nil {
		rows, err := s.messages.GetByIDs(ctx, tx, []uuid.UUID{*cursor})
		if err != nil {
			return nil, fmt.Errorf("resolve cursor: %w", err)
		}
		if len(rows) > 0 {
			t := rows[0].CreatedAt
			before = &t
		} else {
			s.log.Warn("Unknown message cursor, ignoring", "cursor", cursor.String())
		}
	}

	// Fetch one extra row to detect whether an older page exists.
	newestFirst, err := s.messages.ListVisibleBefore(ctx, tx, podID, before, now, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	hasMore := len(newestFirst) > limit
	if hasMore {
		newestFirst = newestFirst[:limit]
	}

	chronological := make([]*types.PodMessage, len(newestFirst))
	for i, m := range newestFirst {
		chronological[len(newestFirst)-1-i] = m
	}

	list := &MessageList{
		Messages: chronological,
		HasMore:  hasMore,
	}
	if len(chronological) > 0 {
		oldest := chronological[0].ID
		list.OldestMessageID = &oldest
	}
	return list, nil
}
