package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "0412345678", Digits("0412 345-678"))
	assert.Equal(t, "", Digits("no digits"))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Tom Hill", FirstLine("\n  \n Tom Hill \nABN: 123"))
	assert.Equal(t, "", FirstLine(" \n\t"))
}

func TestHasLetterAndPointers(t *testing.T) {
	assert.True(t, HasLetter("12 Smith St"))
	assert.False(t, HasLetter("0412 345 678"))

	assert.Nil(t, StrPtr(""))
	assert.Equal(t, "x", StrOrEmpty(StrPtr("x")))
	assert.Equal(t, "", StrOrEmpty(nil))
	assert.Equal(t, "abc...(truncated)", Truncate("abcdef", 3))
}
