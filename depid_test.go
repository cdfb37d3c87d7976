package ideadensity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// catSentence parses as "The cat sat ." with sentence-relative heads.
func catSentence() DepSentence {
	return DepSentence{Tokens: []DepToken{
		{Text: "The", Tag: "DT", Pos: "DET", Dep: "det", Head: 1, Index: 0},
		{Text: "cat", Tag: "NN", Pos: "NOUN", Dep: "nsubj", Head: 2, Index: 1},
		{Text: "sat", Tag: "VBD", Pos: "VERB", Dep: "ROOT", Head: 2, Index: 2},
		{Text: ".", Tag: ".", Pos: "PUNCT", Dep: "punct", Head: 2, Index: 3, IsPunct: true},
	}}
}

// iThinkSentence parses as "I think it works ." and should be dropped whole by
// the I/you subject filter.
func iThinkSentence() DepSentence {
	return DepSentence{Tokens: []DepToken{
		{Text: "I", Tag: "PRP", Pos: "PRON", Dep: "nsubj", Head: 1, Index: 0},
		{Text: "think", Tag: "VBP", Pos: "VERB", Dep: "ROOT", Head: 1, Index: 1},
		{Text: "it", Tag: "PRP", Pos: "PRON", Dep: "nsubj", Head: 3, Index: 2},
		{Text: "works", Tag: "VBZ", Pos: "VERB", Dep: "ccomp", Head: 1, Index: 3},
		{Text: ".", Tag: ".", Pos: "PUNCT", Dep: "punct", Head: 1, Index: 4, IsPunct: true},
	}}
}

func TestDepidBasicCounting(t *testing.T) {
	res := DepidFromSentences([]DepSentence{catSentence()}, DepidOptions{})

	assert.Equal(t, 3, res.WordCount)
	assert.Equal(t, []Dependency{
		{Token: "The", Dep: "det", Head: "cat"},
		{Token: "cat", Dep: "nsubj", Head: "sat"},
	}, res.Dependencies)
	assert.InDelta(t, 2.0/3.0, res.Density, 1e-9)
}

func TestDepidDeterminerFilter(t *testing.T) {
	res := DepidFromSentences([]DepSentence{catSentence()}, DefaultDepidOptions())

	assert.Equal(t, 3, res.WordCount)
	assert.Equal(t, []Dependency{
		{Token: "cat", Dep: "nsubj", Head: "sat"},
	}, res.Dependencies)
	assert.InDelta(t, 1.0/3.0, res.Density, 1e-9)
}

func TestDepidIYouSubjectFilter(t *testing.T) {
	sents := []DepSentence{iThinkSentence(), catSentence()}

	res := DepidFromSentences(sents, DefaultDepidOptions())

	// the filtered sentence contributes no dependencies but its words still count
	assert.Equal(t, 7, res.WordCount)
	assert.Equal(t, []Dependency{
		{Token: "cat", Dep: "nsubj", Head: "sat"},
	}, res.Dependencies)

	opts := DefaultDepidOptions()
	opts.UseIYouSubjectFilter = false
	res = DepidFromSentences(sents, opts)
	assert.Len(t, res.Dependencies, 2) // both nsubj "it" filtered, "works" ccomp uncounted
}

func TestDepidNsubjFilter(t *testing.T) {
	sent := DepSentence{Tokens: []DepToken{
		{Text: "It", Tag: "PRP", Pos: "PRON", Dep: "nsubj", Head: 1, Index: 0},
		{Text: "rains", Tag: "VBZ", Pos: "VERB", Dep: "ROOT", Head: 1, Index: 1},
	}}

	res := DepidFromSentences([]DepSentence{sent}, DefaultDepidOptions())
	assert.Empty(t, res.Dependencies)
	assert.Equal(t, 0.0, res.Density)

	opts := DefaultDepidOptions()
	opts.UseExcludedNsubjFilter = false
	res = DepidFromSentences([]DepSentence{sent}, opts)
	assert.Equal(t, []Dependency{{Token: "It", Dep: "nsubj", Head: "rains"}}, res.Dependencies)
}

func TestDepidCCFilter(t *testing.T) {
	sent := DepSentence{Tokens: []DepToken{
		{Text: "cats", Tag: "NNS", Pos: "NOUN", Dep: "nsubj", Head: 2, Index: 0},
		{Text: "and", Tag: "CC", Pos: "CCONJ", Dep: "cc", Head: 0, Index: 1},
		{Text: "purr", Tag: "VBP", Pos: "VERB", Dep: "ROOT", Head: 2, Index: 2},
	}}

	res := DepidFromSentences([]DepSentence{sent}, DefaultDepidOptions())
	assert.Equal(t, []Dependency{{Token: "cats", Dep: "nsubj", Head: "purr"}}, res.Dependencies)

	opts := DefaultDepidOptions()
	opts.UseExcludedCCFilter = false
	res = DepidFromSentences([]DepSentence{sent}, opts)
	assert.Len(t, res.Dependencies, 2)
}

func TestDepidCustomFilters(t *testing.T) {
	opts := DepidOptions{
		SentenceFilters: []SentenceFilter{
			func(s DepSentence) bool { return len(s.Tokens) > 4 },
		},
		TokenFilters: []TokenFilter{
			func(tok DepToken) bool { return tok.Dep != "det" },
		},
	}

	res := DepidFromSentences([]DepSentence{catSentence(), iThinkSentence()}, opts)

	// the four-token cat sentence is dropped, and its words still counted
	assert.Equal(t, 7, res.WordCount)
	for _, d := range res.Dependencies {
		assert.NotEqual(t, "det", d.Dep)
		assert.NotEqual(t, "sat", d.Head)
	}
}

func TestDepidRDeduplicates(t *testing.T) {
	sents := []DepSentence{catSentence(), catSentence()}

	plain := DepidFromSentences(sents, DepidOptions{})
	assert.Len(t, plain.Dependencies, 4)

	dedup := DepidFromSentences(sents, DepidOptions{DepidR: true})
	assert.Len(t, dedup.Dependencies, 2)
	assert.Equal(t, 6, dedup.WordCount)
	assert.InDelta(t, 2.0/6.0, dedup.Density, 1e-9)
}

func TestDepidEmptyInput(t *testing.T) {
	res := DepidFromSentences(nil, DefaultDepidOptions())

	assert.Equal(t, 0, res.WordCount)
	assert.Equal(t, 0.0, res.Density)
	assert.Empty(t, res.Dependencies)
}
