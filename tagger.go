package ideadensity

import (
	"context"
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ErrModelUnavailable wraps failures to load or run a tagging model.
var ErrModelUnavailable = fmt.Errorf("tagging model unavailable")

// Tagger produces Penn Treebank tagged tokens for a text. Implementations
// must be safe for concurrent use.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]TaggedWord, error)
}

// ProseTagger tags text with the embedded prose English model. It runs
// in-process and needs no external services, which makes it the default.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (pt *ProseTagger) Tag(ctx context.Context, text string) ([]TaggedWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	var tagged []TaggedWord
	for _, tok := range doc.Tokens() {
		tagged = append(tagged, TaggedWord{Token: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}
