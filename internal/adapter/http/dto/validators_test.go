package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWalletAddress(t *testing.T) {
	assert.True(t, ValidWalletAddress("0x9858effd232b4033e47d90003d41ec34ecaeda94"))
	assert.True(t, ValidWalletAddress("0x9858EFFD232B4033E47D90003D41EC34ECAEDA94"))

	assert.False(t, ValidWalletAddress(""))
	assert.False(t, ValidWalletAddress("9858effd232b4033e47d90003d41ec34ecaeda94"))
	assert.False(t, ValidWalletAddress("0x9858"))
	assert.False(t, ValidWalletAddress("0xZZ58effd232b4033e47d90003d41ec34ecaeda94"))
	assert.False(t, ValidWalletAddress("0x9858effd232b4033e47d90003d41ec34ecaeda94ff"))
}

func TestSanitizeStruct(t *testing.T) {
	note := "  <i>note</i> "
	in := struct {
		Phrase string
		Note   *string
		Count  int
	}{
		Phrase: "  abandon ability  ",
		Note:   &note,
		Count:  3,
	}

	SanitizeStruct(&in)

	assert.Equal(t, "abandon ability", in.Phrase)
	assert.Equal(t, "&lt;i&gt;note&lt;/i&gt;", *in.Note)
	assert.Equal(t, 3, in.Count)
}

func TestSanitizeStruct_NonStruct(t *testing.T) {
	s := "  plain  "
	SanitizeStruct(&s)
	assert.Equal(t, "  plain  ", s, "non-struct input is left alone")

	SanitizeStruct(nil)
}
