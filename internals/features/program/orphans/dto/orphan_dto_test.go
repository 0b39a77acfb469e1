package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betulabla_backend/internals/features/program/orphans/model"
)

var validate = validator.New()

func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

func TestCreateOrphanRequest_Valid(t *testing.T) {
	req := CreateOrphanRequest{
		FullName: "Amina",
		Age:      intptr(9),
		Location: strptr("Lagos"),
	}
	require.NoError(t, validate.Struct(&req))

	m := req.ToModel()
	assert.Equal(t, "Amina", m.FullName)
	assert.Equal(t, 9, *m.Age)
	assert.Equal(t, "Lagos", *m.Location)
	assert.Nil(t, m.PhotoURL)
	assert.Equal(t, model.OrphanStatusPending, m.Status)
}

func TestCreateOrphanRequest_MissingName(t *testing.T) {
	req := CreateOrphanRequest{Age: intptr(9)}
	assert.Error(t, validate.Struct(&req))
}

func TestCreateOrphanRequest_AgeBounds(t *testing.T) {
	tooOld := CreateOrphanRequest{FullName: "Amina", Age: intptr(45)}
	assert.Error(t, validate.Struct(&tooOld))

	negative := CreateOrphanRequest{FullName: "Amina", Age: intptr(-1)}
	assert.Error(t, validate.Struct(&negative))

	noAge := CreateOrphanRequest{FullName: "Amina"}
	assert.NoError(t, validate.Struct(&noAge))
}

func TestUpdateOrphanRequest_PartialApply(t *testing.T) {
	m := CreateOrphanRequest{FullName: "Amina", Location: strptr("Lagos")}.ToModel()

	upd := UpdateOrphanRequest{
		SchoolName: strptr("Community Primary School"),
		Status:     strptr(model.OrphanStatusApproved),
	}
	require.NoError(t, validate.Struct(&upd))
	upd.Apply(&m)

	assert.Equal(t, "Amina", m.FullName)
	assert.Equal(t, "Lagos", *m.Location)
	assert.Equal(t, "Community Primary School", *m.SchoolName)
	assert.Equal(t, model.OrphanStatusApproved, m.Status)
}

func TestUpdateOrphanRequest_BadStatus(t *testing.T) {
	upd := UpdateOrphanRequest{Status: strptr("active")}
	assert.Error(t, validate.Struct(&upd), "legacy literal must be rejected")
}
