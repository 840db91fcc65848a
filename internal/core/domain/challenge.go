package domain

// WordSelection is one (position, word) answer to a verification
// challenge.
type WordSelection struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
}

// VerificationChallenge is a recall quiz over a subset of mnemonic
// words: the selected word positions, and a flattened pool of shuffled
// options (the true words interleaved with lexical decoys). It is
// recomputed on demand and never persisted.
type VerificationChallenge struct {
	Indices []int    `json:"indices"`
	Options []string `json:"options"`
}
