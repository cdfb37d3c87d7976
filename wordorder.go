package ideadensity

import (
	"strings"
)

// adjustWordOrder is the second counting pass. In questions the auxiliary
// verb precedes the subject ("Is the cat happy?"), which would hide it from
// the backward-looking proposition rules. Rule 101 moves a copy of the
// auxiliary to just before the main verb or end of sentence; the original
// slot stays behind as an inert marker so the arena never renumbers earlier
// items. Returns the index to resume scanning from.
func adjustWordOrder(wl *WordList, i int, speechMode bool) int {
	b := wl.Items
	w := b[i]
	if w.Token == "" || !auxiliaryVerbs[strings.ToLower(w.Token)] {
		return i
	}

	// Only questions qualify: the auxiliary starts the sentence, or the
	// sentence starts with an interrogative.
	bos := BeginningOfSentence(b, i)
	if bos != i && !interrogativeTags[b[bos].Tag] {
		return i
	}

	dest := i + 1
	for dest < len(b) && b[dest].Tag != SentenceEnd && !verbTags[b[dest].Tag] {
		dest++
	}
	if dest <= i+1 {
		// Nothing between the auxiliary and its landing spot; it is already
		// where the proposition rules expect it.
		return i
	}

	wl.insert(dest, &WordItem{
		Token:  w.Token,
		Tag:    w.Tag,
		IsWord: true,
		IsProp: true,
		Rule:   RuleMovedAux,
	})
	w.Token += "/moved"
	w.Tag = ""
	w.IsWord = false
	w.IsProp = false

	return i
}
