package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostalCode(t *testing.T) {
	assert.True(t, ValidatePostalCode("1500001"))
	assert.True(t, ValidatePostalCode("150-0001"))
	assert.False(t, ValidatePostalCode("150000"))
	assert.False(t, ValidatePostalCode("15000011"))
	assert.False(t, ValidatePostalCode("abc-defg"))
	assert.False(t, ValidatePostalCode(""))
}

func TestNormalizePostalCode(t *testing.T) {
	assert.Equal(t, "1500001", NormalizePostalCode(" 150-0001 "))
	assert.Equal(t, "1500001", NormalizePostalCode("1500001"))
}
