package dto

import (
	"time"

	"github.com/google/uuid"

	"betulabla_backend/internals/features/program/outreach/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type OutreachDTO struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	ActivityType       string    `json:"activity_type"`
	Location           string    `json:"location"`
	Date               string    `json:"date"`
	BeneficiariesCount *int      `json:"beneficiaries_count"`
	Description        *string   `json:"description"`
	PhotoURL           *string   `json:"photo_url"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateOutreachRequest struct {
	Title              string  `json:"title" form:"title" validate:"required,min=2,max=255"`
	ActivityType       string  `json:"activity_type" form:"activity_type" validate:"required,oneof=food_distribution medical_outreach education clothing_distribution community_visit other"`
	Location           string  `json:"location" form:"location" validate:"required,min=2,max=255"`
	Date               string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	BeneficiariesCount *int    `json:"beneficiaries_count" form:"beneficiaries_count" validate:"omitempty,gte=0"`
	Description        *string `json:"description" form:"description"`
}

// ============================
// Update Request DTO (partial)
// ============================

type UpdateOutreachRequest struct {
	Title              *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	ActivityType       *string `json:"activity_type" form:"activity_type" validate:"omitempty,oneof=food_distribution medical_outreach education clothing_distribution community_visit other"`
	Location           *string `json:"location" form:"location" validate:"omitempty,min=2,max=255"`
	Date               *string `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	BeneficiariesCount *int    `json:"beneficiaries_count" form:"beneficiaries_count" validate:"omitempty,gte=0"`
	Description        *string `json:"description" form:"description"`
	Status             *string `json:"status" form:"status" validate:"omitempty,oneof=pending approved rejected planned ongoing completed"`
}

// ============================
// Converters
// ============================

func (r CreateOutreachRequest) ToModel() model.OutreachModel {
	date, _ := time.Parse(dateLayout, r.Date)
	return model.OutreachModel{
		Title:              r.Title,
		ActivityType:       r.ActivityType,
		Location:           r.Location,
		Date:               date,
		BeneficiariesCount: r.BeneficiariesCount,
		Description:        r.Description,
		Status:             model.OutreachStatusPending,
	}
}

func (r UpdateOutreachRequest) Apply(m *model.OutreachModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.ActivityType != nil {
		m.ActivityType = *r.ActivityType
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.Date != nil {
		if date, err := time.Parse(dateLayout, *r.Date); err == nil {
			m.Date = date
		}
	}
	if r.BeneficiariesCount != nil {
		m.BeneficiariesCount = r.BeneficiariesCount
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

func ToOutreachDTO(m model.OutreachModel) OutreachDTO {
	return OutreachDTO{
		ID:                 m.ID,
		Title:              m.Title,
		ActivityType:       m.ActivityType,
		Location:           m.Location,
		Date:               m.Date.Format(dateLayout),
		BeneficiariesCount: m.BeneficiariesCount,
		Description:        m.Description,
		PhotoURL:           m.PhotoURL,
		Status:             m.Status,
		CreatedAt:          m.CreatedAt,
	}
}
