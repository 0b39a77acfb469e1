package model

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle statuses. Approval writes "approved"; legacy rows that
// still carry "active" are migrated, see the migration note in DESIGN.md.
const (
	OrphanStatusPending  = "pending"
	OrphanStatusApproved = "approved"
	OrphanStatusRejected = "rejected"
)

func IsValidOrphanStatus(s string) bool {
	switch s {
	case OrphanStatusPending, OrphanStatusApproved, OrphanStatusRejected:
		return true
	}
	return false
}

// OrphanModel represents the orphans table
type OrphanModel struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName          string    `gorm:"size:150;not null" json:"full_name"`
	Age               *int      `json:"age"`
	Location          *string   `gorm:"size:255" json:"location"`
	SchoolName        *string   `gorm:"size:255" json:"school_name"`
	GradeLevel        *string   `gorm:"size:50" json:"grade_level"`
	SchoolFeesCovered bool      `gorm:"not null;default:false" json:"school_fees_covered"`
	Notes             *string   `gorm:"type:text" json:"notes"`
	PhotoURL          *string   `gorm:"type:text" json:"photo_url"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrphanModel) TableName() string {
	return "orphans"
}
