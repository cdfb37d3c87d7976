package ideadensity

import (
	"fmt"
	"strings"
)

// MaxLookback bounds how far backward searches reach. CPIDR 3.2 uses the same
// window.
const MaxLookback = 10

// ErrLookbackOutOfRange signals a backward search started past the end of the
// arena. That is a logic error in the caller, so SearchBackwards panics with
// an error wrapping this value.
var ErrLookbackOutOfRange = fmt.Errorf("lookback start outside the word list")

// SearchBackwards scans backwards from (not including) index from, looking for
// an item satisfying pred. Blank slots are skipped; the search gives up after
// MaxLookback slots or at the end of the enclosing sentence, returning nil.
func SearchBackwards(items []*WordItem, from int, pred func(*WordItem) bool) *WordItem {
	if from < 0 || from > len(items) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrLookbackOutOfRange, from, len(items)))
	}
	for j := from - 1; j >= 0 && j > from-1-MaxLookback; j-- {
		it := items[j]
		if it.Tag == SentenceEnd {
			return nil
		}
		if it.Token == "" {
			continue
		}
		if pred(it) {
			return it
		}
	}
	return nil
}

// BeginningOfSentence returns the index of the first item of the sentence
// containing index i. Sentinel padding and slots without a tag bound the
// sentence just like a sentence-end tag.
func BeginningOfSentence(items []*WordItem, i int) int {
	j := i - 1
	for j >= 0 {
		it := items[j]
		if it.Tag == SentenceEnd || it.Tag == "" {
			break
		}
		j--
	}
	return j + 1
}

// IsRepetition reports whether second looks like a speaker's retry of first:
// either an exact repeat, or first is a broken-off prefix marked with a
// trailing hyphen, as in "hesi- hesitation". Bare prefixes do not count,
// very short targets are ignored, and the articles "a" and "an" never read
// as broken-off prefixes.
func IsRepetition(first, second string) bool {
	if first == "" || second == "" {
		return false
	}
	if first == second {
		return true
	}
	if !strings.HasSuffix(first, "-") {
		return false
	}
	first = strings.TrimSuffix(first, "-")
	if first == "" || first == "a" || first == "an" {
		return false
	}
	return len(second) > 3 && strings.HasPrefix(second, first)
}
