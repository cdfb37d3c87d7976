package ideadensity

import "fmt"

// Rule identifies the counting rule that last touched a word item. The
// numbers are part of the output contract: they appear in CSV/TXT exports and
// existing regression baselines refer to them, so they are stable even though
// the sequence has gaps.
//
// Numbering bands: 1-99 adjust words and tags, 100-199 adjust word order,
// 200+ identify propositions. Rules above 600 only apply in speech mode.
type Rule int

const (
	RuleNone Rule = 0

	RuleSentenceBreak    Rule = 1
	RuleWord             Rule = 2
	RuleJoinCardinals    Rule = 3
	RuleBridgeCardinals  Rule = 4
	RuleRepeatedWord     Rule = 20
	RuleRepeatedAcross   Rule = 21
	RuleRepeatedSkipOne  Rule = 22
	RuleRepeatedBigram   Rule = 23
	RuleNegation         Rule = 50
	RuleDemonstrativePrn Rule = 54

	RuleMovedAux Rule = 101

	RulePropTag            Rule = 200
	RuleArticle            Rule = 201
	RuleCorrelConj         Rule = 203
	RuleLinkedConj         Rule = 204
	RuleSentenceFinalTo    Rule = 206
	RuleSentenceFinalModal Rule = 207
	RuleLoneCardinal       Rule = 210
	RuleNegUnless          Rule = 211
	RuleNegPolarity        Rule = 212
	RuleGoingTo            Rule = 213
	RuleIfThen             Rule = 214
	RuleEachOther          Rule = 225
	RuleHowCome            Rule = 230
	RuleLinkingVerb        Rule = 301
	RuleBePreposition      Rule = 302
	RuleLinkedDeterminer   Rule = 310
	RuleCausativeAdj       Rule = 311
	RuleAuxNot             Rule = 401
	RuleAuxVerb            Rule = 402
	RuleAuxSplitVerb       Rule = 405
	RuleInfinitiveTo       Rule = 510
	RuleForInfinitive      Rule = 511
	RuleFillerSentence     Rule = 610
	RuleFillerLike         Rule = 632
	RuleYouKnow            Rule = 634
)

var ruleNames = map[Rule]string{
	RuleNone:               "none",
	RuleSentenceBreak:      "sentence break",
	RuleWord:               "word",
	RuleJoinCardinals:      "joined consecutive cardinals",
	RuleBridgeCardinals:    "bridged cardinals",
	RuleRepeatedWord:       "repeated word",
	RuleRepeatedAcross:     "repetition across punctuation",
	RuleRepeatedSkipOne:    "repetition one word back",
	RuleRepeatedBigram:     "repeated bigram",
	RuleNegation:           "negation",
	RuleDemonstrativePrn:   "demonstrative pronoun",
	RuleMovedAux:           "moved auxiliary",
	RulePropTag:            "proposition tag",
	RuleArticle:            "article",
	RuleCorrelConj:         "correlating conjunction",
	RuleLinkedConj:         "and-then/or-else",
	RuleSentenceFinalTo:    "sentence-final to",
	RuleSentenceFinalModal: "sentence-final modal",
	RuleLoneCardinal:       "cardinal without noun",
	RuleNegUnless:          "not ... unless",
	RuleNegPolarity:        "negative polarity item",
	RuleGoingTo:            "going to",
	RuleIfThen:             "if ... then",
	RuleEachOther:          "each other",
	RuleHowCome:            "how come/many",
	RuleLinkingVerb:        "linking verb",
	RuleBePreposition:      "be before preposition",
	RuleLinkedDeterminer:   "linking verb, adverb, determiner",
	RuleCausativeAdj:       "causative adjective",
	RuleAuxNot:             "auxiliary before not",
	RuleAuxVerb:            "auxiliary before verb",
	RuleAuxSplitVerb:       "auxiliary split from verb",
	RuleInfinitiveTo:       "infinitive to",
	RuleForInfinitive:      "for ... to infinitive",
	RuleFillerSentence:     "all-filler sentence",
	RuleFillerLike:         "filler like",
	RuleYouKnow:            "you know",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule %d", int(r))
}
