package types

import (
	"time"

	"github.com/google/uuid"
)

// UserMessageLog is an append-only audit copy of every user message, read by
// the admin dashboard. Never updated or deleted from this service.
type UserMessageLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PodID     uuid.UUID `gorm:"type:uuid;not null;index" json:"pod_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	DayNumber int       `gorm:"not null;column:day_number" json:"day_number"`
	Content   string    `gorm:"not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserMessageLog) TableName() string {
	return "user_message_log"
}
