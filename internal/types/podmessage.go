package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser   = "user"
	SenderSarah  = "sarah"
	SenderZombie = "zombie"
)

// PodMessage is one chat bubble in a pod. AI messages are written with a
// future ScheduledFor and a nil SentAt; an external delivery job flips SentAt
// once the message is due. A nil SentAt means "not yet visible" unless the
// schedule has already passed.
type PodMessage struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PodID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"pod_id"`
	Pod          *Pod       `gorm:"constraint:OnDelete:CASCADE;foreignKey:PodID;references:ID" json:"pod,omitempty"`
	DayNumber    int        `gorm:"not null;default:0;column:day_number" json:"day_number"`
	SenderType   string     `gorm:"not null;column:sender_type" json:"sender_type"`
	SenderName   string     `gorm:"not null;column:sender_name" json:"sender_name"`
	SenderAvatar string     `gorm:"column:sender_avatar" json:"sender_avatar"`
	Content      string     `gorm:"not null;column:content" json:"content"`
	AudioURL     *string    `gorm:"column:audio_url" json:"audio_url,omitempty"`
	ScheduledFor *time.Time `gorm:"column:scheduled_for;index" json:"scheduled_for,omitempty"`
	SentAt       *time.Time `gorm:"column:sent_at;index" json:"sent_at,omitempty"`
	OfferMention bool       `gorm:"not null;default:false;column:offer_mention" json:"offer_mention"`
	ReadAt       *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (PodMessage) TableName() string {
	return "pod_message"
}
