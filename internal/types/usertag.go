package types

import (
	"time"

	"github.com/google/uuid"
)

// UserTag is written by the funnel/email automation when a lead moves through a
// campaign (e.g. "nutrition-webinar", "fitness-optin"). The pod subsystem only
// reads the most recent tag to bootstrap a niche category.
type UserTag struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Tag       string    `gorm:"not null;column:tag" json:"tag"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserTag) TableName() string {
	return "user_tag"
}
