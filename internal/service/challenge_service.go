package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

// DefaultChallengeSize is the number of word positions a recall
// challenge covers.
const DefaultChallengeSize = 3

// WordChallengeBuilder implements ports.ChallengeBuilder. Decoys are
// cheap lexical perturbations of the true word — a recall aid, not a
// security boundary.
type WordChallengeBuilder struct{}

// NewWordChallengeBuilder creates a new WordChallengeBuilder.
func NewWordChallengeBuilder() *WordChallengeBuilder {
	return &WordChallengeBuilder{}
}

// Build selects sampleSize distinct word positions uniformly at random
// and, per position, shuffles the true word into a pool of decoys. The
// option pools are flattened in index order into a single slice.
func (b *WordChallengeBuilder) Build(phrase string, sampleSize int) (*domain.VerificationChallenge, error) {
	words := strings.Fields(strings.TrimSpace(phrase))
	if len(words) == 0 {
		return nil, fmt.Errorf("empty phrase")
	}
	if sampleSize <= 0 {
		sampleSize = DefaultChallengeSize
	}
	if sampleSize > len(words) {
		return nil, fmt.Errorf("sample size %d exceeds word count %d", sampleSize, len(words))
	}

	indices := rand.Perm(len(words))[:sampleSize]

	options := make([]string, 0, sampleSize*4)
	for _, idx := range indices {
		pool := append(decoysFor(words[idx]), words[idx])
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		options = append(options, pool...)
	}

	return &domain.VerificationChallenge{
		Indices: indices,
		Options: options,
	}, nil
}

// Verify is all-or-nothing: one wrong word, or an out-of-range index,
// fails the whole challenge.
func (b *WordChallengeBuilder) Verify(phrase string, selections []domain.WordSelection) bool {
	words := strings.Fields(strings.TrimSpace(phrase))
	for _, sel := range selections {
		if sel.Index < 0 || sel.Index >= len(words) {
			return false
		}
		if words[sel.Index] != sel.Word {
			return false
		}
	}
	return true
}

// decoysFor perturbs a word into three lookalikes: drop the first
// letter, pluralize, drop the second letter. Not guaranteed distinct
// from the true word for every input.
func decoysFor(word string) []string {
	decoys := []string{word + "s"}
	if len(word) > 1 {
		decoys = append(decoys, word[1:])
	}
	if len(word) > 2 {
		decoys = append(decoys, word[:1]+word[2:])
	}
	return decoys
}
