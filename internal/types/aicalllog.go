package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AICallLog records one outbound model call. Inserts are best-effort; a failed
// log write never fails the request that triggered it.
type AICallLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PodID      uuid.UUID      `gorm:"type:uuid;index" json:"pod_id"`
	SenderType string         `gorm:"not null;column:sender_type" json:"sender_type"`
	Model      string         `gorm:"not null;column:model" json:"model"`
	LatencyMS  int64          `gorm:"not null;default:0;column:latency_ms" json:"latency_ms"`
	Success    bool           `gorm:"not null;default:false;column:success" json:"success"`
	ErrorText  string         `gorm:"column:error_text" json:"error_text,omitempty"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (AICallLog) TableName() string {
	return "ai_call_log"
}
