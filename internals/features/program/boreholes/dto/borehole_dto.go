package dto

import (
	"time"

	"github.com/google/uuid"

	"betulabla_backend/internals/features/program/boreholes/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type BoreholeDTO struct {
	ID                 uuid.UUID `json:"id"`
	CommunityName      string    `json:"community_name"`
	Location           string    `json:"location"`
	DepthMeters        *float64  `json:"depth_meters"`
	CompletionDate     *string   `json:"completion_date"`
	BeneficiariesCount *int      `json:"beneficiaries_count"`
	Notes              *string   `json:"notes"`
	PhotoURL           *string   `json:"photo_url"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateBoreholeRequest struct {
	CommunityName      string   `json:"community_name" form:"community_name" validate:"required,min=2,max=255"`
	Location           string   `json:"location" form:"location" validate:"required,min=2,max=255"`
	DepthMeters        *float64 `json:"depth_meters" form:"depth_meters" validate:"omitempty,gt=0"`
	CompletionDate     *string  `json:"completion_date" form:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	BeneficiariesCount *int     `json:"beneficiaries_count" form:"beneficiaries_count" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes" form:"notes"`
}

// ============================
// Update Request DTO (partial)
// ============================

type UpdateBoreholeRequest struct {
	CommunityName      *string  `json:"community_name" form:"community_name" validate:"omitempty,min=2,max=255"`
	Location           *string  `json:"location" form:"location" validate:"omitempty,min=2,max=255"`
	DepthMeters        *float64 `json:"depth_meters" form:"depth_meters" validate:"omitempty,gt=0"`
	CompletionDate     *string  `json:"completion_date" form:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	BeneficiariesCount *int     `json:"beneficiaries_count" form:"beneficiaries_count" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes" form:"notes"`
	Status             *string  `json:"status" form:"status" validate:"omitempty,oneof=pending approved rejected planning in_progress completed"`
}

// ============================
// Converters
// ============================

func (r CreateBoreholeRequest) ToModel() model.BoreholeModel {
	return model.BoreholeModel{
		CommunityName:      r.CommunityName,
		Location:           r.Location,
		DepthMeters:        r.DepthMeters,
		CompletionDate:     parseDate(r.CompletionDate),
		BeneficiariesCount: r.BeneficiariesCount,
		Notes:              r.Notes,
		Status:             model.BoreholeStatusPending,
	}
}

func (r UpdateBoreholeRequest) Apply(m *model.BoreholeModel) {
	if r.CommunityName != nil {
		m.CommunityName = *r.CommunityName
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.DepthMeters != nil {
		m.DepthMeters = r.DepthMeters
	}
	if r.CompletionDate != nil {
		m.CompletionDate = parseDate(r.CompletionDate)
	}
	if r.BeneficiariesCount != nil {
		m.BeneficiariesCount = r.BeneficiariesCount
	}
	if r.Notes != nil {
		m.Notes = r.Notes
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

func ToBoreholeDTO(m model.BoreholeModel) BoreholeDTO {
	return BoreholeDTO{
		ID:                 m.ID,
		CommunityName:      m.CommunityName,
		Location:           m.Location,
		DepthMeters:        m.DepthMeters,
		CompletionDate:     formatDate(m.CompletionDate),
		BeneficiariesCount: m.BeneficiariesCount,
		Notes:              m.Notes,
		PhotoURL:           m.PhotoURL,
		Status:             m.Status,
		CreatedAt:          m.CreatedAt,
	}
}

// parseDate assumes the value already passed datetime validation
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
