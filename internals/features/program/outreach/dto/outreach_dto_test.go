package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betulabla_backend/internals/features/program/outreach/model"
)

var validate = validator.New()

func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

func TestCreateOutreachRequest_Valid(t *testing.T) {
	req := CreateOutreachRequest{
		Title:              "Ramadan Food Packs",
		ActivityType:       model.ActivityFoodDistribution,
		Location:           "Maiduguri",
		Date:               "2026-02-20",
		BeneficiariesCount: intptr(350),
	}
	require.NoError(t, validate.Struct(&req))

	m := req.ToModel()
	assert.Equal(t, "Ramadan Food Packs", m.Title)
	assert.Equal(t, model.ActivityFoodDistribution, m.ActivityType)
	assert.Equal(t, "2026-02-20", m.Date.Format("2006-01-02"))
	assert.Equal(t, model.OutreachStatusPending, m.Status)
}

func TestCreateOutreachRequest_BadActivityType(t *testing.T) {
	req := CreateOutreachRequest{
		Title:        "Ramadan Food Packs",
		ActivityType: "charity",
		Location:     "Maiduguri",
		Date:         "2026-02-20",
	}
	assert.Error(t, validate.Struct(&req))
}

func TestCreateOutreachRequest_MissingDate(t *testing.T) {
	req := CreateOutreachRequest{
		Title:        "Ramadan Food Packs",
		ActivityType: model.ActivityFoodDistribution,
		Location:     "Maiduguri",
	}
	assert.Error(t, validate.Struct(&req))
}

func TestUpdateOutreachRequest_PartialApply(t *testing.T) {
	m := CreateOutreachRequest{
		Title:        "Ramadan Food Packs",
		ActivityType: model.ActivityFoodDistribution,
		Location:     "Maiduguri",
		Date:         "2026-02-20",
	}.ToModel()

	upd := UpdateOutreachRequest{
		Status:             strptr(model.OutreachStatusCompleted),
		BeneficiariesCount: intptr(420),
	}
	require.NoError(t, validate.Struct(&upd))
	upd.Apply(&m)

	assert.Equal(t, "Ramadan Food Packs", m.Title)
	assert.Equal(t, "2026-02-20", m.Date.Format("2006-01-02"))
	assert.Equal(t, model.OutreachStatusCompleted, m.Status)
	assert.Equal(t, 420, *m.BeneficiariesCount)
}

func TestUpdateOutreachRequest_BadStatus(t *testing.T) {
	upd := UpdateOutreachRequest{Status: strptr("active")}
	assert.Error(t, validate.Struct(&upd), "legacy literal must be rejected")
}
