package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, v.RegisterValidation("period", validatePeriod))
	require.NoError(t, v.RegisterValidation("exportformat", validateExportFormat))
	return v
}

func TestExportRequestValidation(t *testing.T) {
	v := newValidator(t)

	valid := ExportRequest{CompanyID: "c1", CompanyName: "Acme GmbH", Period: "2024-03", Format: "qb-csv"}
	assert.NoError(t, v.Struct(valid))

	unknownFormat := valid
	unknownFormat.Format = "weird"
	assert.NoError(t, v.Struct(unknownFormat))

	badPeriod := valid
	badPeriod.Period = "2024-13"
	assert.Error(t, v.Struct(badPeriod))

	badFormat := valid
	badFormat.Format = "../etc"
	assert.Error(t, v.Struct(badFormat))

	badSet := valid
	badSet.Set = "archived"
	assert.Error(t, v.Struct(badSet))
}

func TestExportRequest_ExportSet(t *testing.T) {
	assert.Equal(t, "ready", string(ExportRequest{}.ExportSet()))
	assert.Equal(t, "posted", string(ExportRequest{Set: "posted"}.ExportSet()))
}
