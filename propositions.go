package ideadensity

import (
	"strings"
)

// propositionRule pairs a rule number with its effect. The table is evaluated
// in ascending numeric order for every slot, so later rules override earlier
// ones; "the" is first marked a proposition by 200 and then unmarked by 201,
// leaving 201 as the recorded rule.
type propositionRule struct {
	id    Rule
	apply func(wl *WordList, i int, speechMode bool)
}

// identifyPotentialPropositions is the third counting pass. Rules are
// triggered by the last word of the pattern they look for and reach backward
// from there, never more than MaxLookback slots and never across a sentence
// end.
func identifyPotentialPropositions(wl *WordList, i int, speechMode bool) {
	if wl.Items[i].Token == "" {
		return
	}
	for _, r := range propositionRules {
		r.apply(wl, i, speechMode)
	}
}

var propositionRules = []propositionRule{
	// Proposition-bearing tags.
	{RulePropTag, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if propositionTags[w.Tag] {
			w.IsProp = true
			w.Rule = RulePropTag
		}
	}},

	// Articles are not propositions.
	{RuleArticle, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if articles[strings.ToLower(w.Token)] {
			w.IsProp = false
			w.Rule = RuleArticle
		}
	}},

	// The first word of "either...or", "neither...nor", "both...and" is not a
	// proposition. The second word is tagged CC; the first may be CC or DT.
	{RuleCorrelConj, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if w.Tag != "CC" || correlatingConjunctions[strings.ToLower(w.Token)] {
			return
		}
		if it := SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return correlatingConjunctions[strings.ToLower(it.Token)]
		}); it != nil {
			it.IsProp = false
			it.Rule = RuleCorrelConj
		}
	}},

	// "And then" and "or else" are each a single proposition.
	{RuleLinkedConj, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		lower, p1Lower := strings.ToLower(w.Token), strings.ToLower(p1.Token)
		if (p1Lower == "and" && lower == "then") || (p1Lower == "or" && lower == "else") {
			w.IsProp = false
			w.Rule = RuleLinkedConj
		}
	}},

	// "To" is not a proposition as the last word of a sentence.
	{RuleSentenceFinalTo, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if w.Tag == SentenceEnd && p1.Tag == "TO" {
			p1.IsProp = false
			p1.Rule = RuleSentenceFinalTo
		}
	}},

	// A modal is a proposition as the last word of a sentence.
	{RuleSentenceFinalModal, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if w.Tag == SentenceEnd && p1.Tag == "MD" {
			p1.IsProp = true
			p1.Rule = RuleSentenceFinalModal
		}
	}},

	// A cardinal number is a proposition only with a noun within the next 5
	// words of the same sentence: "in 3 parts" is two propositions but
	// "in 1941" is one.
	{RuleLoneCardinal, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if w.Tag != "CD" {
			return
		}
		w.IsProp = false
		w.Rule = RuleLoneCardinal
		seen := 0
		for j := i + 1; j < len(wl.Items) && seen < 5; j++ {
			it := wl.Items[j]
			if it.Token == "" {
				continue
			}
			seen++
			if it.Tag == SentenceEnd {
				break
			}
			if nounTags[it.Tag] {
				w.IsProp = true
				break
			}
		}
	}},

	// "Not...unless" and similar pairs are one proposition; the second word
	// is the one counted.
	{RuleNegUnless, func(wl *WordList, i int, _ bool) {
		if !negPolarityUnless[strings.ToLower(wl.Items[i].Token)] {
			return
		}
		if it := SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return it.Tag == TagNot
		}); it != nil {
			it.IsProp = false
			it.Rule = RuleNegUnless
		}
	}},

	// "Not...any" and similar pairs are one proposition; the negation is the
	// one counted.
	{RuleNegPolarity, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if !negPolarityItems[strings.ToLower(w.Token)] {
			return
		}
		if SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return it.Tag == TagNot
		}) != nil {
			w.IsProp = false
			w.Rule = RuleNegPolarity
		}
	}},

	// "Going to" is not a proposition directly before a verb.
	{RuleGoingTo, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		i1 := wl.prev(i)
		p1 := wl.Items[i1]
		p2 := wl.Items[wl.prev(i1)]
		if verbTags[w.Tag] && strings.ToLower(p1.Token) == "to" &&
			strings.ToLower(p2.Token) == "going" {
			p1.IsProp = false
			p1.Rule = RuleGoingTo
			p2.IsProp = false
			p2.Rule = RuleGoingTo
		}
	}},

	// "If...then" is one conjunction. Only "then" followed by another word
	// qualifies; sentence-final "then" is more likely an adverb.
	{RuleIfThen, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if !w.IsWord || strings.ToLower(p1.Token) != "then" {
			return
		}
		if SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return strings.ToLower(it.Token) == "if"
		}) != nil {
			p1.IsProp = false
			p1.Rule = RuleIfThen
		}
	}},

	// "Each other" is a pronoun.
	{RuleEachOther, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if strings.ToLower(w.Token) == "other" && strings.ToLower(p1.Token) == "each" {
			w.Tag, p1.Tag = "PRP", "PRP"
			w.IsProp, p1.IsProp = false, false
			w.Rule, p1.Rule = RuleEachOther, RuleEachOther
		}
	}},

	// "How come" and "how many" are each one proposition.
	{RuleHowCome, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		lower := strings.ToLower(w.Token)
		if (lower == "come" || lower == "many") && strings.ToLower(p1.Token) == "how" {
			w.IsProp = false
			w.Tag = p1.Tag
			w.Rule = RuleHowCome
		}
	}},

	// A linking verb is not a proposition before an adjective or adverb.
	// Adverbs are included because they are frequent tagging mistakes for
	// adjectives.
	{RuleLinkingVerb, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if (adjectiveTags[w.Tag] || adverbTags[w.Tag]) && linkingVerbs[strings.ToLower(p1.Token)] {
			p1.IsProp = false
			p1.Rule = RuleLinkingVerb
		}
	}},

	// "Be" is not a proposition before a preposition.
	{RuleBePreposition, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if w.Tag == "IN" && beForms[strings.ToLower(p1.Token)] {
			p1.IsProp = false
			p1.Rule = RuleBePreposition
		}
	}},

	// Linking verb + adverb + determiner is two propositions, as in "he is
	// now the president"; rule 201 would otherwise undercount it.
	{RuleLinkedDeterminer, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if w.Tag != "DT" && w.Tag != "PDT" {
			return
		}
		i1 := wl.prev(i)
		p1 := wl.Items[i1]
		p2 := wl.Items[wl.prev(i1)]
		if adverbTags[p1.Tag] && linkingVerbs[strings.ToLower(p2.Token)] {
			p1.IsProp = true
			p1.Rule = RuleLinkedDeterminer
			p2.IsProp = true
			p2.Rule = RuleLinkedDeterminer
		}
	}},

	// After a causative linking verb the adjective is not a new proposition:
	// "make it better" counts the verb only.
	{RuleCausativeAdj, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		if !adjectiveTags[w.Tag] {
			return
		}
		if SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return causativeLinkingVerbs[strings.ToLower(it.Token)]
		}) != nil {
			w.IsProp = false
			w.Rule = RuleCausativeAdj
		}
	}},

	// "Aux not" is one proposition.
	{RuleAuxNot, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if strings.ToLower(w.Token) == "not" && auxiliaryVerbs[strings.ToLower(p1.Token)] {
			p1.IsProp = false
			p1.Rule = RuleAuxNot
		}
	}},

	// "Aux verb" is one proposition.
	{RuleAuxVerb, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if verbTags[w.Tag] && auxiliaryVerbs[strings.ToLower(p1.Token)] {
			p1.IsProp = false
			p1.Rule = RuleAuxVerb
		}
	}},

	// Aux + negation/adverb + verb: the auxiliary is not a proposition, as in
	// "had always sung".
	{RuleAuxSplitVerb, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		i1 := wl.prev(i)
		p1 := wl.Items[i1]
		p2 := wl.Items[wl.prev(i1)]
		if verbTags[w.Tag] && (p1.Tag == TagNot || adverbTags[p1.Tag]) &&
			auxiliaryVerbs[strings.ToLower(p2.Token)] {
			p2.IsProp = false
			p2.Rule = RuleAuxSplitVerb
		}
	}},

	// "To" plus infinitive is one proposition.
	{RuleInfinitiveTo, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if w.Tag == "VB" && p1.Tag == "TO" {
			p1.IsProp = false
			p1.Rule = RuleInfinitiveTo
		}
	}},

	// In "for...to verb" the "for" is not a proposition.
	{RuleForInfinitive, func(wl *WordList, i int, _ bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if w.Tag != "VB" || p1.Tag != "TO" {
			return
		}
		if it := SearchBackwards(wl.Items, i, func(it *WordItem) bool {
			return strings.ToLower(it.Token) == "for"
		}); it != nil {
			it.IsProp = false
			it.Rule = RuleForInfinitive
		}
	}},

	// A spoken sentence made entirely of filler words is propositionless.
	{RuleFillerSentence, func(wl *WordList, i int, speechMode bool) {
		w := wl.Items[i]
		if !speechMode || w.Tag != SentenceEnd {
			return
		}
		bos := BeginningOfSentence(wl.Items, i)
		for j := bos; j < i; j++ {
			it := wl.Items[j]
			if it.Token == "" {
				continue
			}
			if it.Tag != "UH" && !fillerWords[strings.ToLower(it.Token)] {
				return
			}
		}
		for j := bos; j < i; j++ {
			it := wl.Items[j]
			if it.Token == "" {
				continue
			}
			it.Tag = ""
			it.IsProp = false
			it.Rule = RuleFillerSentence
		}
	}},

	// Spoken "like" is a filler unless a form of "be" precedes it.
	{RuleFillerLike, func(wl *WordList, i int, speechMode bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if speechMode && strings.ToLower(w.Token) == "like" &&
			!beForms[strings.ToLower(p1.Token)] {
			w.Tag = ""
			w.IsProp = false
			w.Rule = RuleFillerLike
		}
	}},

	// Spoken "you know" is a filler and counts as one word, not two.
	{RuleYouKnow, func(wl *WordList, i int, speechMode bool) {
		w := wl.Items[i]
		p1 := wl.Items[wl.prev(i)]
		if speechMode && strings.ToLower(p1.Token) == "you" &&
			strings.ToLower(w.Token) == "know" {
			p1.Token = "you_know"
			p1.Tag = ""
			p1.IsProp = false
			p1.IsWord = true
			p1.Rule = RuleYouKnow
			w.Blank()
		}
	}},
}
