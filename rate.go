// Package ideadensity measures propositional idea density of English text.
// It implements the CPIDR part-of-speech rule engine and the dependency-based
// DEPID algorithm, with an embedded tagger for the former and a Dockerized
// dependency parser for the latter.
package ideadensity

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// applyIdeaCountingRules runs the three passes over the arena. The first pass
// settles words and tags, the second repairs question word order, the third
// identifies propositions.
func applyIdeaCountingRules(wl *WordList, speechMode bool) {
	for i := 0; i < len(wl.Items); i++ {
		identifyWordsAndAdjustTags(wl, i, speechMode)
	}
	for i := 0; i < len(wl.Items); i++ {
		i = adjustWordOrder(wl, i, speechMode)
	}
	for i := 0; i < len(wl.Items); i++ {
		identifyPotentialPropositions(wl, i, speechMode)
		if w := wl.Items[i]; !w.IsBlank() {
			Logger.Debug().
				Int("i", i).
				Str("token", w.Token).
				Str("tag", w.Tag).
				Bool("word", w.IsWord).
				Bool("prop", w.IsProp).
				Int("rule", int(w.Rule)).
				Msg("rated")
		}
	}
}

// RateTagged scores an already tagged token stream. It is deterministic and
// does no I/O, so it is also the natural seam for testing the rules without a
// tagger.
func RateTagged(tagged []TaggedWord, speechMode bool) *Result {
	wl := NewWordList(tagged)
	applyIdeaCountingRules(wl, speechMode)

	res := &Result{Words: wl}
	for _, w := range wl.Items {
		if w.IsWord {
			res.WordCount++
		}
		if w.IsProp {
			res.PropositionCount++
		}
	}
	if res.WordCount > 0 {
		res.Density = float64(res.PropositionCount) / float64(res.WordCount)
	}
	return res
}

// Rater ties a Tagger to the counting rules.
type Rater struct {
	tagger Tagger
}

// NewRater returns a Rater using the given tagger.
func NewRater(tagger Tagger) *Rater {
	return &Rater{tagger: tagger}
}

// RateText tags and scores text. Speech mode additionally filters repetition
// and filler typical of transcribed speech.
func (r *Rater) RateText(ctx context.Context, text string, speechMode bool) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{Words: NewWordList(nil)}, nil
	}
	tagged, err := r.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}
	Logger.Debug().
		Int("tokens", len(tagged)).
		Bool("speech", speechMode).
		Msg("tagging complete, applying counting rules")
	return RateTagged(tagged, speechMode), nil
}

var (
	defaultRater   *Rater
	defaultRaterMu sync.Mutex
)

func getOrCreateDefaultRater() *Rater {
	defaultRaterMu.Lock()
	defer defaultRaterMu.Unlock()
	if defaultRater == nil {
		defaultRater = NewRater(NewProseTagger())
	}
	return defaultRater
}

// RateWithContext is the context-aware convenience entry point, using the
// package-wide default rater with its embedded tagger.
func RateWithContext(ctx context.Context, text string, speechMode bool) (*Result, error) {
	return getOrCreateDefaultRater().RateText(ctx, text, speechMode)
}

// Rate is the backward compatible version that creates a new background context.
func Rate(text string, speechMode bool) (*Result, error) {
	return RateWithContext(context.Background(), text, speechMode)
}
