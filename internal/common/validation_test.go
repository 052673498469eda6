package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorRules(t *testing.T) {
	v := NewValidator().
		Field("hint", "", Required).
		Field("po", "PBG-18191-18039-Prov", PONumber).
		Field("po2", "PBG  181", PONumber).
		Field("po3", "Work Order 4411", PONumber).
		Field("po4", "Work\nOrder 4411", PONumber).
		Field("hint2", "abcdef", MaxLength(3)).
		Field("driver", "mysql", OneOf("sqlite", "postgres")).
		Field("workers", 0, Positive)

	require.True(t, v.HasErrors())
	fields := make([]string, 0, len(v.Errors()))
	for _, e := range v.Errors() {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"hint", "po2", "po4", "hint2", "driver", "workers"}, fields)
	assert.Error(t, v.Error())
	assert.NoError(t, NewValidator().Field("po", "P123456", PONumber).Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	err := WrapError(ErrNotFound, "extraction")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "extraction: resource not found", err.Error())

	app := NewAppError("BAD", "bad file", ErrUnsupportedFile)
	assert.True(t, errors.Is(app, ErrUnsupportedFile))
	assert.Equal(t, "BAD: bad file: unsupported file type", app.Error())
}
