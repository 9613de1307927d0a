package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	PodStatusActive    = "active"
	PodStatusCompleted = "completed"

	PodPhasePre  = "pre_completion"
	PodPhasePost = "post_completion"

	ScholarshipUsed    = "used"
	ScholarshipActive  = "active"
	ScholarshipExpired = "expired"
	ScholarshipPending = "pending"
	ScholarshipNone    = "none"
)

// PassingExamScore is the minimum exam score that moves a pod into the
// post-completion phase.
const PassingExamScore = 80

// MasterclassDeadline is how long a member has to finish the masterclass
// before the pre-completion countdown runs out.
const MasterclassDeadline = 48 * time.Hour

// ScholarshipEligibleDay is the masterclass day from which a pod with no
// scholarship window yet is shown as "pending".
const ScholarshipEligibleDay = 8

// Pod is the per-user masterclass group chat. One row per user; the paired
// peer is a scripted persona referenced by ZombieKey. MasterclassDay and the
// scholarship fields are advanced by external jobs, never by this service.
type Pod struct {
	ID                   uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User                 *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	NicheCategory        string     `gorm:"not null;column:niche_category" json:"niche_category"`
	ZombieKey            string     `gorm:"not null;column:zombie_key" json:"zombie_key"`
	MasterclassDay       int        `gorm:"not null;default:0;column:masterclass_day" json:"masterclass_day"`
	Status               string     `gorm:"not null;default:'active';column:status" json:"status"`
	StartedAt            time.Time  `gorm:"not null;column:started_at" json:"started_at"`
	ExamScore            *int       `gorm:"column:exam_score" json:"exam_score,omitempty"`
	ScholarshipUsed      bool       `gorm:"not null;default:false;column:scholarship_used" json:"scholarship_used"`
	ScholarshipExpiresAt *time.Time `gorm:"column:scholarship_expires_at" json:"scholarship_expires_at,omitempty"`
	CreatedAt            time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Pod) TableName() string {
	return "pod"
}

func (p *Pod) ExamPassed() bool {
	return p.ExamScore != nil && *p.ExamScore >= PassingExamScore
}

func (p *Pod) Phase() string {
	if p.ExamPassed() {
		return PodPhasePost
	}
	return PodPhasePre
}

// DeadlineAt is only meaningful pre-completion.
func (p *Pod) DeadlineAt() time.Time {
	return p.StartedAt.Add(MasterclassDeadline)
}

// ScholarshipState classifies the scholarship window. Precedence matters:
// a used scholarship wins over an open window, and an expired window wins
// over day-based eligibility. now == expiry counts as expired.
func (p *Pod) ScholarshipState(now time.Time) string {
	switch {
	case p.ScholarshipUsed:
		return ScholarshipUsed
	case p.ScholarshipExpiresAt != nil && now.Before(*p.ScholarshipExpiresAt):
		return ScholarshipActive
	case p.ScholarshipExpiresAt != nil:
		return ScholarshipExpired
	case p.MasterclassDay >= ScholarshipEligibleDay:
		return ScholarshipPending
	default:
		return ScholarshipNone
	}
}
