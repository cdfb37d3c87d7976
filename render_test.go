package ideadensity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaceBefore(t *testing.T) {
	tests := []struct {
		tok      string
		expected bool
	}{
		{"cat", true},
		{"42", true},
		{".", false},
		{",", false},
		{"'s", false},
		{"’s", false},
		{"n't", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, spaceBefore(tt.tok), "token %q", tt.tok)
	}
}

func TestWordListText(t *testing.T) {
	wl := NewWordList(tagged(
		"He", "PRP", "is", "VBZ", "n't", "RB", "here", "RB",
		",", ",", "sadly", "RB", ".", SentenceEnd))

	assert.Equal(t, "He isn't here, sadly.", wl.Text())
}
