package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betulabla_backend/internals/features/program/boreholes/model"
)

var validate = validator.New()

func intptr(v int) *int           { return &v }
func strptr(v string) *string     { return &v }
func floatptr(v float64) *float64 { return &v }

func TestCreateBoreholeRequest_Valid(t *testing.T) {
	req := CreateBoreholeRequest{
		CommunityName:      "Kaduna North",
		Location:           "Kaduna State",
		DepthMeters:        floatptr(120.5),
		CompletionDate:     strptr("2026-03-15"),
		BeneficiariesCount: intptr(500),
	}
	require.NoError(t, validate.Struct(&req))

	m := req.ToModel()
	assert.Equal(t, "Kaduna North", m.CommunityName)
	assert.Equal(t, 120.5, *m.DepthMeters)
	assert.Equal(t, 500, *m.BeneficiariesCount)
	assert.Equal(t, model.BoreholeStatusPending, m.Status)

	require.NotNil(t, m.CompletionDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *m.CompletionDate)
}

func TestCreateBoreholeRequest_MissingFields(t *testing.T) {
	noCommunity := CreateBoreholeRequest{Location: "Kaduna State"}
	assert.Error(t, validate.Struct(&noCommunity))

	noLocation := CreateBoreholeRequest{CommunityName: "Kaduna North"}
	assert.Error(t, validate.Struct(&noLocation))
}

func TestCreateBoreholeRequest_BadDate(t *testing.T) {
	req := CreateBoreholeRequest{
		CommunityName:  "Kaduna North",
		Location:       "Kaduna State",
		CompletionDate: strptr("15/03/2026"),
	}
	assert.Error(t, validate.Struct(&req))
}

func TestCreateBoreholeRequest_NegativeDepth(t *testing.T) {
	req := CreateBoreholeRequest{
		CommunityName: "Kaduna North",
		Location:      "Kaduna State",
		DepthMeters:   floatptr(-10),
	}
	assert.Error(t, validate.Struct(&req))
}

func TestUpdateBoreholeRequest_PartialApply(t *testing.T) {
	m := CreateBoreholeRequest{
		CommunityName: "Kaduna North",
		Location:      "Kaduna State",
	}.ToModel()

	upd := UpdateBoreholeRequest{
		Status:         strptr(model.BoreholeStatusInProgress),
		CompletionDate: strptr("2026-06-01"),
	}
	require.NoError(t, validate.Struct(&upd))
	upd.Apply(&m)

	assert.Equal(t, "Kaduna North", m.CommunityName)
	assert.Equal(t, model.BoreholeStatusInProgress, m.Status)
	require.NotNil(t, m.CompletionDate)
	assert.Equal(t, "2026-06-01", m.CompletionDate.Format("2006-01-02"))
}

func TestUpdateBoreholeRequest_BadStatus(t *testing.T) {
	upd := UpdateBoreholeRequest{Status: strptr("active")}
	assert.Error(t, validate.Struct(&upd), "legacy literal must be rejected")
}

func TestToBoreholeDTO_DateRoundTrip(t *testing.T) {
	d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	m := model.BoreholeModel{
		CommunityName:  "Kaduna North",
		Location:       "Kaduna State",
		CompletionDate: &d,
		Status:         model.BoreholeStatusCompleted,
	}

	out := ToBoreholeDTO(m)
	require.NotNil(t, out.CompletionDate)
	assert.Equal(t, "2026-03-15", *out.CompletionDate)

	m.CompletionDate = nil
	assert.Nil(t, ToBoreholeDTO(m).CompletionDate)
}
