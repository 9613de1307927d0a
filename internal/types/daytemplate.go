package types

import (
	"time"

	"github.com/google/uuid"
)

// DayTemplate is the static curriculum entry for one (niche, day). Seeded from
// the persona knowledge base at migration time; read-only afterwards.
type DayTemplate struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	NicheCategory string    `gorm:"not null;index:idx_niche_day,unique;column:niche_category" json:"niche_category"`
	DayNumber     int       `gorm:"not null;index:idx_niche_day,unique;column:day_number" json:"day_number"`
	LessonTitle   string    `gorm:"not null;column:lesson_title" json:"lesson_title"`
	GapTopic      string    `gorm:"not null;column:gap_topic" json:"gap_topic"`
	HasOffer      bool      `gorm:"not null;default:false;column:has_offer" json:"has_offer"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DayTemplate) TableName() string {
	return "day_template"
}
