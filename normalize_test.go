package ideadensity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runPass1(wl *WordList, speechMode bool) {
	for i := 0; i < len(wl.Items); i++ {
		identifyWordsAndAdjustTags(wl, i, speechMode)
	}
}

func TestSentenceBreakMarker(t *testing.T) {
	wl := NewWordList(tagged("I", "PRP", "went", "VBD", "^", "SYM"))
	runPass1(wl, false)

	caret := wl.Items[SentinelItems+2]
	assert.Equal(t, SentenceEnd, caret.Tag)
	assert.Equal(t, RuleSentenceBreak, caret.Rule)
	assert.False(t, caret.IsWord)
}

func TestWordIdentification(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		tag      string
		expected bool
	}{
		{"plain word", "cat", "NN", true},
		{"number", "42", "CD", true},
		{"symbol tag", "x", "SYM", false},
		{"punctuation", ".", ".", false},
		{"leading punctuation", "'s", "POS", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := NewWordList(tagged(tt.token, tt.tag))
			runPass1(wl, false)
			assert.Equal(t, tt.expected, wl.Items[SentinelItems].IsWord)
		})
	}
}

func TestJoinConsecutiveCardinals(t *testing.T) {
	wl := NewWordList(tagged("595", "CD", "7000", "CD"))
	runPass1(wl, false)

	first := wl.Items[SentinelItems]
	assert.Equal(t, "595 7000", first.Token)
	assert.Equal(t, RuleJoinCardinals, first.Rule)
	assert.True(t, first.IsWord)
	assert.True(t, wl.Items[SentinelItems+1].IsBlank())
	assert.Len(t, wl.Items, SentinelItems+2)
}

func TestBridgeCardinals(t *testing.T) {
	wl := NewWordList(tagged("5", "CD", ".", ".", "2", "CD"))
	runPass1(wl, false)

	first := wl.Items[SentinelItems]
	assert.Equal(t, "5.2", first.Token)
	assert.Equal(t, RuleBridgeCardinals, first.Rule)
	assert.True(t, wl.Items[SentinelItems+1].IsBlank())
	assert.True(t, wl.Items[SentinelItems+2].IsBlank())
	assert.Equal(t, []string{"5.2"}, wl.Tokens())
}

func TestRepetitionSuppression(t *testing.T) {
	t.Run("immediate repeat", func(t *testing.T) {
		wl := NewWordList(tagged("was", "VBD", "was", "VBD", "singing", "VBG"))
		runPass1(wl, true)

		first := wl.Items[SentinelItems]
		assert.Equal(t, "was", first.Token)
		assert.Equal(t, "", first.Tag)
		assert.False(t, first.IsWord)
		assert.Equal(t, RuleRepeatedWord, first.Rule)
		assert.True(t, wl.Items[SentinelItems+1].IsWord)
	})

	t.Run("broken-off retry", func(t *testing.T) {
		wl := NewWordList(tagged("hesi-", "NN", "hesitation", "NN"))
		runPass1(wl, true)

		assert.Equal(t, RuleRepeatedWord, wl.Items[SentinelItems].Rule)
		assert.False(t, wl.Items[SentinelItems].IsWord)
	})

	t.Run("repeat across punctuation", func(t *testing.T) {
		wl := NewWordList(tagged("move", "VB", ",", ",", "move", "VB"))
		runPass1(wl, true)

		first, comma := wl.Items[SentinelItems], wl.Items[SentinelItems+1]
		assert.Equal(t, RuleRepeatedSkipOne, first.Rule)
		assert.False(t, first.IsWord)
		assert.Equal(t, RuleRepeatedAcross, comma.Rule)
		assert.Equal(t, "", comma.Tag)
		assert.True(t, wl.Items[SentinelItems+2].IsWord)
	})

	t.Run("repeated bigram", func(t *testing.T) {
		wl := NewWordList(tagged(
			"i", "PRP", "mean", "VBP", ",", ",",
			"i", "PRP", "mean", "VBP", "it", "PRP"))
		runPass1(wl, true)

		for off := 0; off < 3; off++ {
			item := wl.Items[SentinelItems+off]
			assert.Equal(t, RuleRepeatedBigram, item.Rule, "offset %d", off)
			assert.False(t, item.IsWord)
			assert.Equal(t, "", item.Tag)
		}
		assert.True(t, wl.Items[SentinelItems+3].IsWord)
		assert.True(t, wl.Items[SentinelItems+4].IsWord)
	})

	t.Run("no suppression outside speech mode", func(t *testing.T) {
		wl := NewWordList(tagged("was", "VBD", "was", "VBD"))
		runPass1(wl, false)
		assert.True(t, wl.Items[SentinelItems].IsWord)
	})
}

func TestNegationTagging(t *testing.T) {
	tests := []struct {
		name  string
		token string
		tag   string
	}{
		{"plain not", "not", "RB"},
		{"contraction", "isn't", "VBZ"},
		{"missing apostrophe", "dont", "VBP"},
		{"capitalized", "Not", "RB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := NewWordList(tagged(tt.token, tt.tag))
			runPass1(wl, false)

			item := wl.Items[SentinelItems]
			assert.Equal(t, TagNot, item.Tag)
			assert.True(t, item.IsProp)
			assert.Equal(t, RuleNegation, item.Rule)
		})
	}
}

func TestDemonstrativePronoun(t *testing.T) {
	t.Run("that before verb", func(t *testing.T) {
		wl := NewWordList(tagged("that", "DT", "runs", "VBZ"))
		runPass1(wl, false)

		that := wl.Items[SentinelItems]
		assert.Equal(t, "PRP", that.Tag)
		assert.False(t, that.IsProp)
		assert.Equal(t, RuleDemonstrativePrn, that.Rule)
	})

	t.Run("this before adverb", func(t *testing.T) {
		wl := NewWordList(tagged("this", "DT", "quickly", "RB"))
		runPass1(wl, false)
		assert.Equal(t, "PRP", wl.Items[SentinelItems].Tag)
	})

	t.Run("that before noun is untouched", func(t *testing.T) {
		wl := NewWordList(tagged("that", "DT", "cat", "NN"))
		runPass1(wl, false)
		assert.Equal(t, "DT", wl.Items[SentinelItems].Tag)
	})
}
