package ideadensity

import (
	"strings"
)

// TaggedWord is a single (surface, part-of-speech tag) pair as produced by a
// Tagger. Tags follow the Penn Treebank tagset.
type TaggedWord struct {
	Token string
	Tag   string
}

// WordItem is one slot of the analysis arena. Counting rules annotate slots in
// place: IsWord marks countable words, IsProp marks propositions, Rule records
// the last rule that fired on the slot.
type WordItem struct {
	Token  string
	Tag    string
	IsWord bool
	IsProp bool
	Rule   Rule

	blank bool
}

// IsBlank reports whether the slot holds no token at all. Sentinel padding and
// slots vacated by merge rules are blank; items whose tag was cleared by a
// speech rule still carry their token and are not blank.
func (w *WordItem) IsBlank() bool {
	return w.blank
}

// Blank turns the slot into an empty placeholder. The arena never shrinks, so
// merge rules blank the consumed slot instead of deleting it.
func (w *WordItem) Blank() {
	w.Token = ""
	w.Tag = ""
	w.IsWord = false
	w.IsProp = false
	w.Rule = RuleNone
	w.blank = true
}

// SentinelItems is the number of permanently blank items padding the front of
// every WordList, so rules can reach backwards without bounds checks.
const SentinelItems = 10

// WordList is the arena the counting rules operate on: SentinelItems blank
// slots followed by one slot per tagged token.
type WordList struct {
	Items []*WordItem
}

// NewWordList builds an arena from tagger output.
func NewWordList(tagged []TaggedWord) *WordList {
	items := make([]*WordItem, 0, SentinelItems+len(tagged))
	for i := 0; i < SentinelItems; i++ {
		items = append(items, &WordItem{blank: true})
	}
	for _, tw := range tagged {
		items = append(items, &WordItem{Token: tw.Token, Tag: tw.Tag})
	}
	return &WordList{Items: items}
}

// prev returns the index of the nearest slot before i that was not vacated by
// a merge rule. Sentinel slots terminate the walk like any real neighbor.
func (wl *WordList) prev(i int) int {
	j := i - 1
	for j >= SentinelItems && wl.Items[j].IsBlank() {
		j--
	}
	if j < 0 {
		j = 0
	}
	return j
}

// insert grows the arena by one slot at index i, shifting later slots right.
func (wl *WordList) insert(i int, w *WordItem) {
	wl.Items = append(wl.Items, nil)
	copy(wl.Items[i+1:], wl.Items[i:])
	wl.Items[i] = w
}

// Tokens returns the surfaces of all non-blank slots in order.
func (wl *WordList) Tokens() (parts []string) {
	for _, w := range wl.Items {
		if !w.IsBlank() {
			parts = append(parts, w.Token)
		}
	}
	return
}

// Words returns the slots counted as words.
func (wl *WordList) Words() (words []*WordItem) {
	for _, w := range wl.Items {
		if w.IsWord {
			words = append(words, w)
		}
	}
	return
}

// Propositions returns the slots counted as propositions.
func (wl *WordList) Propositions() (props []*WordItem) {
	for _, w := range wl.Items {
		if w.IsProp {
			props = append(props, w)
		}
	}
	return
}

// Text reassembles the surviving tokens into a readable string, attaching
// punctuation and contractions to the preceding token.
func (wl *WordList) Text() string {
	var sb strings.Builder
	first := true
	for _, tok := range wl.Tokens() {
		if !first && spaceBefore(tok) {
			sb.WriteString(" ")
		}
		sb.WriteString(tok)
		first = false
	}
	return sb.String()
}

// Result holds the outcome of rating a text.
type Result struct {
	WordCount        int
	PropositionCount int
	Density          float64
	Words            *WordList
}
