package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutreachStatusPending   = "pending"
	OutreachStatusApproved  = "approved"
	OutreachStatusRejected  = "rejected"
	OutreachStatusPlanned   = "planned"
	OutreachStatusOngoing   = "ongoing"
	OutreachStatusCompleted = "completed"
)

const (
	ActivityFoodDistribution     = "food_distribution"
	ActivityMedicalOutreach      = "medical_outreach"
	ActivityEducation            = "education"
	ActivityClothingDistribution = "clothing_distribution"
	ActivityCommunityVisit       = "community_visit"
	ActivityOther                = "other"
)

func IsValidOutreachStatus(s string) bool {
	switch s {
	case OutreachStatusPending, OutreachStatusApproved, OutreachStatusRejected,
		OutreachStatusPlanned, OutreachStatusOngoing, OutreachStatusCompleted:
		return true
	}
	return false
}

func IsValidActivityType(s string) bool {
	switch s {
	case ActivityFoodDistribution, ActivityMedicalOutreach, ActivityEducation,
		ActivityClothingDistribution, ActivityCommunityVisit, ActivityOther:
		return true
	}
	return false
}

// OutreachModel represents the outreach_activities table
type OutreachModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title              string    `gorm:"size:255;not null" json:"title"`
	ActivityType       string    `gorm:"type:varchar(30);not null" json:"activity_type"`
	Location           string    `gorm:"size:255;not null" json:"location"`
	Date               time.Time `gorm:"type:date;not null" json:"date"`
	BeneficiariesCount *int      `json:"beneficiaries_count"`
	Description        *string   `gorm:"type:text" json:"description"`
	PhotoURL           *string   `gorm:"type:text" json:"photo_url"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OutreachModel) TableName() string {
	return "outreach_activities"
}
