package ideadensity

import (
	"strings"
	"unicode"
)

// identifyWordsAndAdjustTags is the first counting pass. It decides which
// slots are countable words, repairs tags the tagger gets wrong for our
// purposes, fuses multi-token numbers, and in speech mode suppresses
// disfluent repetition.
func identifyWordsAndAdjustTags(wl *WordList, i int, speechMode bool) {
	w := wl.Items[i]
	if w.Token == "" {
		return
	}

	// Rule 1: a caret marks a broken-off spoken sentence.
	if w.Token == "^" {
		w.Tag = SentenceEnd
		w.Rule = RuleSentenceBreak
	}

	// Rule 2: a token starting with a letter or digit is a word, unless the
	// tagger called it a symbol.
	if startsAlnum(w.Token) && w.Tag != "SYM" {
		w.IsWord = true
		w.Rule = RuleWord
	}

	p1 := wl.Items[wl.prev(i)]

	// Rule 3: two adjacent cardinals are one number ("595" "7000").
	if w.Tag == "CD" && p1.Tag == "CD" {
		p1.Token = p1.Token + " " + w.Token
		p1.Rule = RuleJoinCardinals
		w.Blank()
		return
	}

	// Rule 4: cardinals bridged by a symbol are one number ("5" "." "2").
	p2 := wl.Items[wl.prev(wl.prev(i))]
	if w.Tag == "CD" && p1.Token != "" && !startsAlnum(p1.Token) && p2.Tag == "CD" {
		p2.Token = p2.Token + p1.Token + w.Token
		p2.Rule = RuleBridgeCardinals
		p1.Blank()
		w.Blank()
		return
	}

	if speechMode {
		lower := strings.ToLower(w.Token)

		// Rule 20: a repetition "A A" counts once; the earlier occurrence is
		// dropped from the counts but keeps its surface. The first A may be
		// a broken-off prefix of the second.
		if IsRepetition(strings.ToLower(p1.Token), lower) {
			suppressRepetition(p1, RuleRepeatedWord)
		}

		// Rules 21, 22: "A Punct A" simplifies to "A" and "A B A" to "A B".
		if IsRepetition(strings.ToLower(p2.Token), lower) && !punctTags[w.Tag] {
			suppressRepetition(p2, RuleRepeatedSkipOne)
			if punctTags[p1.Tag] {
				suppressRepetition(p1, RuleRepeatedAcross)
			}
		}

		// Rule 23: a repeated two-word phrase split by punctuation,
		// "A B Punct A B", simplifies to "A B".
		i3 := wl.prev(wl.prev(wl.prev(i)))
		p3 := wl.Items[i3]
		p4 := wl.Items[wl.prev(i3)]
		if IsRepetition(strings.ToLower(p3.Token), lower) &&
			IsRepetition(strings.ToLower(p4.Token), strings.ToLower(p1.Token)) &&
			punctTags[p2.Tag] {
			suppressRepetition(p4, RuleRepeatedBigram)
			suppressRepetition(p3, RuleRepeatedBigram)
			suppressRepetition(p2, RuleRepeatedBigram)
		}
	}

	// Rule 50: negations count as propositions and get their own tag so
	// later rules can find them.
	lower := strings.ToLower(w.Token)
	if lower == "not" || strings.HasSuffix(lower, "n't") || ntContractions[lower] {
		w.IsProp = true
		w.Tag = TagNot
		w.Rule = RuleNegation
	}

	// Rule 54: "that" or "this" directly before a verb or adverb is a
	// pronoun, not a determiner ("that is large" vs "that cat").
	p1 = wl.Items[wl.prev(i)]
	p1Lower := strings.ToLower(p1.Token)
	if (p1Lower == "that" || p1Lower == "this") && (verbTags[w.Tag] || adverbTags[w.Tag]) {
		p1.Tag = "PRP"
		p1.IsProp = false
		p1.Rule = RuleDemonstrativePrn
	}
}

func suppressRepetition(w *WordItem, r Rule) {
	w.IsWord = false
	w.IsProp = false
	w.Tag = ""
	w.Rule = r
}

func startsAlnum(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}
