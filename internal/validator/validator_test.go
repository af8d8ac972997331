package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petlink_backend/internal/services/dto"
)

func ptrFloat(v float64) *float64 { return &v }

func validReportRequest() *dto.CreateReportRequest {
	return &dto.CreateReportRequest{
		ReportType: "lost",
		PetType:    "dog",
		Location:   "Nanyuki town center",
		Latitude:   ptrFloat(0.0172),
		Longitude:  ptrFloat(37.0722),
	}
}

func TestValidate_ReportRequest(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validReportRequest()))
}

func TestValidate_ZeroCoordinatesAreValid(t *testing.T) {
	v := New()

	// Equator: latitude 0 is a value, not an absence.
	req := validReportRequest()
	req.Latitude = ptrFloat(0)
	assert.NoError(t, v.Validate(req))

	// Prime meridian.
	req = validReportRequest()
	req.Longitude = ptrFloat(0)
	assert.NoError(t, v.Validate(req))
}

func TestValidate_MissingCoordinatesRejected(t *testing.T) {
	v := New()

	req := validReportRequest()
	req.Latitude = nil
	err := v.Validate(req)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "latitude")

	req = validReportRequest()
	req.Longitude = nil
	err = v.Validate(req)
	require.Error(t, err)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "longitude")
}

func TestValidate_OutOfRangeCoordinatesRejected(t *testing.T) {
	v := New()

	req := validReportRequest()
	req.Latitude = ptrFloat(91)
	assert.Error(t, v.Validate(req))

	req = validReportRequest()
	req.Longitude = ptrFloat(-181)
	assert.Error(t, v.Validate(req))
}

func TestValidate_StatusVocabularies(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.UpdateReportStatusRequest{Status: "in_progress"}))
	assert.Error(t, v.Validate(&dto.UpdateReportStatusRequest{Status: "approved"}))

	assert.NoError(t, v.Validate(&dto.ReviewAdoptionRequest{Status: "approved"}))
	assert.Error(t, v.Validate(&dto.ReviewAdoptionRequest{Status: "rescued"}))
}
