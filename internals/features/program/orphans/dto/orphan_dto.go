package dto

import (
	"time"

	"github.com/google/uuid"

	"betulabla_backend/internals/features/program/orphans/model"
)

// ============================
// Response DTO
// ============================

type OrphanDTO struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"full_name"`
	Age               *int      `json:"age"`
	Location          *string   `json:"location"`
	SchoolName        *string   `json:"school_name"`
	GradeLevel        *string   `json:"grade_level"`
	SchoolFeesCovered bool      `json:"school_fees_covered"`
	Notes             *string   `json:"notes"`
	PhotoURL          *string   `json:"photo_url"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateOrphanRequest struct {
	FullName          string  `json:"full_name" form:"full_name" validate:"required,min=2,max=150"`
	Age               *int    `json:"age" form:"age" validate:"omitempty,gte=0,lte=30"`
	Location          *string `json:"location" form:"location" validate:"omitempty,max=255"`
	SchoolName        *string `json:"school_name" form:"school_name" validate:"omitempty,max=255"`
	GradeLevel        *string `json:"grade_level" form:"grade_level" validate:"omitempty,max=50"`
	SchoolFeesCovered bool    `json:"school_fees_covered" form:"school_fees_covered"`
	Notes             *string `json:"notes" form:"notes"`
}

// ============================
// Update Request DTO (partial)
// ============================

type UpdateOrphanRequest struct {
	FullName          *string `json:"full_name" form:"full_name" validate:"omitempty,min=2,max=150"`
	Age               *int    `json:"age" form:"age" validate:"omitempty,gte=0,lte=30"`
	Location          *string `json:"location" form:"location" validate:"omitempty,max=255"`
	SchoolName        *string `json:"school_name" form:"school_name" validate:"omitempty,max=255"`
	GradeLevel        *string `json:"grade_level" form:"grade_level" validate:"omitempty,max=50"`
	SchoolFeesCovered *bool   `json:"school_fees_covered" form:"school_fees_covered"`
	Notes             *string `json:"notes" form:"notes"`
	Status            *string `json:"status" form:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// ============================
// Converters
// ============================

func (r CreateOrphanRequest) ToModel() model.OrphanModel {
	return model.OrphanModel{
		FullName:          r.FullName,
		Age:               r.Age,
		Location:          r.Location,
		SchoolName:        r.SchoolName,
		GradeLevel:        r.GradeLevel,
		SchoolFeesCovered: r.SchoolFeesCovered,
		Notes:             r.Notes,
		Status:            model.OrphanStatusPending,
	}
}

func (r UpdateOrphanRequest) Apply(m *model.OrphanModel) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Age != nil {
		m.Age = r.Age
	}
	if r.Location != nil {
		m.Location = r.Location
	}
	if r.SchoolName != nil {
		m.SchoolName = r.SchoolName
	}
	if r.GradeLevel != nil {
		m.GradeLevel = r.GradeLevel
	}
	if r.SchoolFeesCovered != nil {
		m.SchoolFeesCovered = *r.SchoolFeesCovered
	}
	if r.Notes != nil {
		m.Notes = r.Notes
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

func ToOrphanDTO(m model.OrphanModel) OrphanDTO {
	return OrphanDTO{
		ID:                m.ID,
		FullName:          m.FullName,
		Age:               m.Age,
		Location:          m.Location,
		SchoolName:        m.SchoolName,
		GradeLevel:        m.GradeLevel,
		SchoolFeesCovered: m.SchoolFeesCovered,
		Notes:             m.Notes,
		PhotoURL:          m.PhotoURL,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}
