package validation

import (
	"errors"
	"testing"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Company string `json:"company" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=Compliant Non-Compliant"`
	Email   string `form:"email" validate:"omitempty,email"`
}

func TestStructReportsJSONFieldName(t *testing.T) {
	err := Struct(sample{Status: "Compliant"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "company", ve.Field)
	assert.Equal(t, "company is required", ve.Message)
}

func TestStructOneOf(t *testing.T) {
	err := Struct(sample{Company: "Acme", Status: "Maybe"})
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "status", ve.Field)
	assert.Equal(t, "status must be one of: Compliant Non-Compliant", ve.Message)
}

func TestStructFallsBackToFormName(t *testing.T) {
	err := Struct(sample{Company: "Acme", Status: "Compliant", Email: "nope"})
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
}

func TestStructAcceptsValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Company: "Acme", Status: "Non-Compliant"}))
}
