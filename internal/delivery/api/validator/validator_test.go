package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	RadiusMeters float64  `json:"radius_meters" validate:"omitempty,gte=1,lte=1000"`
	Mode         string   `json:"navigation_mode" validate:"omitempty,navigation_mode"`
	Status       string   `json:"status" validate:"omitempty,navigation_status"`
}

func TestValidator_Valid(t *testing.T) {
	lat := 0.0

	err := New().Validate(&testRequest{Latitude: &lat, RadiusMeters: 50, Mode: "walking", Status: "paused"})
	assert.NoError(t, err)
}

func TestValidator_FieldErrors(t *testing.T) {
	lat := 91.0

	err := New().Validate(&testRequest{Latitude: &lat, RadiusMeters: 5000, Mode: "flying", Status: "lost"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{
		{Field: "latitude", Message: "must be at most 90"},
		{Field: "radius_meters", Message: "must be at most 1000"},
		{Field: "navigation_mode", Message: "must be one of: walking driving accessibility"},
		{Field: "status", Message: "must be one of: active paused completed cancelled"},
	}, verrs)
}

func TestValidator_Required(t *testing.T) {
	err := New().Validate(&testRequest{})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "latitude", verrs[0].Field)
	assert.Equal(t, "is required", verrs[0].Message)
	assert.Equal(t, "latitude is required", err.Error())
}
