package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellValidation(t *testing.T) {
	type req struct {
		Board []string `validate:"required,len=9,dive,cell"`
	}

	assert.NoError(t, GetValidator().Struct(req{Board: []string{"X", "O", "", "", "", "", "", "", ""}}))
	assert.Error(t, GetValidator().Struct(req{Board: []string{"x", "", "", "", "", "", "", "", ""}}))
	assert.Error(t, GetValidator().Struct(req{Board: []string{"", "", "", "", "Z", "", "", "", ""}}))
	assert.Error(t, GetValidator().Struct(req{Board: []string{"X"}}))
	assert.Error(t, GetValidator().Struct(req{Board: make([]string, 11)}))
	assert.Error(t, GetValidator().Struct(req{}))
}
