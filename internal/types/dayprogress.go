package types

import (
	"time"

	"github.com/google/uuid"
)

type DayProgress struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PodID       uuid.UUID `gorm:"type:uuid;not null;index:idx_pod_day,unique" json:"pod_id"`
	Pod         *Pod      `gorm:"constraint:OnDelete:CASCADE;foreignKey:PodID;references:ID" json:"pod,omitempty"`
	DayNumber   int       `gorm:"not null;index:idx_pod_day,unique;column:day_number" json:"day_number"`
	UserReplied bool      `gorm:"not null;default:false;column:user_replied" json:"user_replied"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DayProgress) TableName() string {
	return "day_progress"
}
