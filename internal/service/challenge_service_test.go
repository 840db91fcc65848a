package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

func TestWordChallengeBuilder_Build(t *testing.T) {
	builder := NewWordChallengeBuilder()
	words := strings.Fields(testPhrase)

	challenge, err := builder.Build(testPhrase, 3)
	require.NoError(t, err)

	assert.Len(t, challenge.Indices, 3)
	assert.Len(t, challenge.Options, 12, "4 options per challenged position")

	seen := make(map[int]bool)
	for _, idx := range challenge.Indices {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(words))
		assert.False(t, seen[idx], "indices must be distinct")
		seen[idx] = true
	}

	// The true word for each position must be among its option pool.
	for i, idx := range challenge.Indices {
		pool := challenge.Options[i*4 : i*4+4]
		assert.Contains(t, pool, words[idx])
	}
}

func TestWordChallengeBuilder_Build_DefaultSize(t *testing.T) {
	builder := NewWordChallengeBuilder()

	challenge, err := builder.Build(testPhrase, 0)
	require.NoError(t, err)
	assert.Len(t, challenge.Indices, DefaultChallengeSize)
}

func TestWordChallengeBuilder_Build_Errors(t *testing.T) {
	builder := NewWordChallengeBuilder()

	_, err := builder.Build("", 3)
	assert.Error(t, err)

	_, err = builder.Build("only two", 3)
	assert.Error(t, err, "sample size larger than word count")
}

func TestWordChallengeBuilder_Verify(t *testing.T) {
	builder := NewWordChallengeBuilder()
	words := strings.Fields(testPhrase)

	correct := []domain.WordSelection{
		{Index: 0, Word: words[0]},
		{Index: 5, Word: words[5]},
		{Index: 11, Word: words[11]},
	}
	assert.True(t, builder.Verify(testPhrase, correct))

	oneWrong := []domain.WordSelection{
		{Index: 0, Word: words[0]},
		{Index: 5, Word: "wrong"},
		{Index: 11, Word: words[11]},
	}
	assert.False(t, builder.Verify(testPhrase, oneWrong))

	outOfRange := []domain.WordSelection{{Index: 12, Word: "about"}}
	assert.False(t, builder.Verify(testPhrase, outOfRange))

	negative := []domain.WordSelection{{Index: -1, Word: words[0]}}
	assert.False(t, builder.Verify(testPhrase, negative))
}

func TestDecoysFor(t *testing.T) {
	decoys := decoysFor("abandon")
	assert.ElementsMatch(t, []string{"abandons", "bandon", "aandon"}, decoys)

	// Short words still produce at least the plural form.
	assert.Contains(t, decoysFor("a"), "as")
}
