package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
)

type sample struct {
	PropertyType string `validate:"omitempty,propertytype"`
	CheckIn      string `validate:"required,date"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{PropertyType: "villa", CheckIn: "2026-03-01"}))

	err := Struct(sample{PropertyType: "castle", CheckIn: "2026-03-01"})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_property_type"))
	require.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	err = Struct(sample{CheckIn: "03/01/2026"})
	require.True(t, httperr.IsBusiness(err, "invalid_check_in"))
}

func TestToSnake(t *testing.T) {
	require.Equal(t, "max_guests", toSnake("MaxGuests"))
	require.Equal(t, "city", toSnake("City"))
	require.Equal(t, "property_id", toSnake("PropertyID"))
	require.Equal(t, "image_url", toSnake("ImageURL"))
}

func TestRegisterGinIsRepeatable(t *testing.T) {
	require.NoError(t, RegisterGin())
	require.NoError(t, RegisterGin())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type request struct {
		CheckIn string `binding:"omitempty,date"`
	}
	require.NoError(t, v.Struct(request{CheckIn: "2026-03-01"}))
	require.Error(t, v.Struct(request{CheckIn: "tomorrow"}))
}
