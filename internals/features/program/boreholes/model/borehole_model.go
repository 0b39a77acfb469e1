package model

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle plus project-progress statuses. A borehole enters the
// review queue as "pending" and only leaves it via approval.
const (
	BoreholeStatusPending    = "pending"
	BoreholeStatusApproved   = "approved"
	BoreholeStatusRejected   = "rejected"
	BoreholeStatusPlanning   = "planning"
	BoreholeStatusInProgress = "in_progress"
	BoreholeStatusCompleted  = "completed"
)

func IsValidBoreholeStatus(s string) bool {
	switch s {
	case BoreholeStatusPending, BoreholeStatusApproved, BoreholeStatusRejected,
		BoreholeStatusPlanning, BoreholeStatusInProgress, BoreholeStatusCompleted:
		return true
	}
	return false
}

// BoreholeModel represents the boreholes table
type BoreholeModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CommunityName      string     `gorm:"size:255;not null" json:"community_name"`
	Location           string     `gorm:"size:255;not null" json:"location"`
	DepthMeters        *float64   `json:"depth_meters"`
	CompletionDate     *time.Time `gorm:"type:date" json:"completion_date"`
	BeneficiariesCount *int       `json:"beneficiaries_count"`
	Notes              *string    `gorm:"type:text" json:"notes"`
	PhotoURL           *string    `gorm:"type:text" json:"photo_url"`
	Status             string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BoreholeModel) TableName() string {
	return "boreholes"
}
