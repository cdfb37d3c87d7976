package ideadensity

// SentenceEnd is the tag that closes a sentence. Backward searches never
// cross it.
const SentenceEnd = "."

// TagNot is the synthetic tag given to negations by rule 50.
const TagNot = "NOT"

// Penn Treebank tag groups used by the counting rules.
var (
	punctTags = map[string]bool{".": true, ",": true, ":": true}

	adjectiveTags = map[string]bool{"JJ": true, "JJR": true, "JJS": true}

	adverbTags = map[string]bool{"RB": true, "RBR": true, "RBS": true, "WRB": true}

	verbTags = map[string]bool{
		"VB": true, "VBD": true, "VBG": true,
		"VBN": true, "VBP": true, "VBZ": true,
	}

	nounTags = map[string]bool{"NN": true, "NNS": true, "NNP": true, "NNPS": true}

	interrogativeTags = map[string]bool{
		"WDT": true, "WP": true, "WPS": true, "WRB": true,
	}

	// Tags that are propositions unless a later rule disqualifies them.
	propositionTags = map[string]bool{
		"CC": true, "CD": true, "DT": true, "IN": true,
		"JJ": true, "JJR": true, "JJS": true,
		"PDT": true, "POS": true, "PRP$": true, "PP$": true,
		"RB": true, "RBR": true, "RBS": true,
		"TO": true,
		"VB": true, "VBD": true, "VBG": true, "VBN": true, "VBP": true, "VBZ": true,
		"WDT": true, "WP": true, "WPS": true, "WRB": true,
	}
)

// Word classes, matched case-insensitively against token surfaces.
var (
	// Modals are absent on purpose: the tagger gives them MD, not a verb tag.
	auxiliaryVerbs = map[string]bool{
		"be": true, "am": true, "is": true, "are": true, "was": true, "were": true,
		"being": true, "been": true,
		"have": true, "has": true, "had": true, "having": true,
		"do": true, "does": true, "did": true,
		"need": true, "dare": true,
	}

	beForms = map[string]bool{
		"be": true, "am": true, "is": true, "are": true, "was": true, "were": true,
		"being": true, "been": true,
	}

	// Verbs that take an adjective after them.
	linkingVerbs = map[string]bool{
		"be": true, "am": true, "is": true, "are": true, "was": true, "were": true,
		"been": true, "being": true,
		"become": true, "becomes": true, "became": true, "becoming": true,
		"get": true, "gets": true, "got": true, "gotten": true, "getting": true,
		"look": true, "looks": true, "looked": true, "looking": true,
		"seem": true, "seems": true, "seemed": true, "seeming": true,
		"appear": true, "appears": true, "appeared": true, "appearing": true,
		"sound": true, "sounds": true, "sounded": true, "sounding": true,
		"feel": true, "feels": true, "felt": true, "feeling": true,
		"smell": true, "smells": true, "smelled": true, "smelling": true,
		"taste": true, "tastes": true, "tasted": true, "tasting": true,
	}

	// Verbs that take a noun phrase plus adjective, as in "make it better".
	causativeLinkingVerbs = map[string]bool{
		"make": true, "makes": true, "made": true, "making": true,
		"turn": true, "turns": true, "turned": true, "turning": true,
		"paint": true, "paints": true, "painted": true, "painting": true,
	}

	// First elements of correlating conjunctions.
	correlatingConjunctions = map[string]bool{
		"both": true, "either": true, "neither": true,
	}

	// Negative-polarity items where the earlier negation carries the
	// proposition, e.g. "not...yet" counts as "not".
	negPolarityItems = map[string]bool{
		"yet": true, "much": true, "many": true, "any": true, "anymore": true,
	}

	// Negative-polarity items where this word carries the proposition and the
	// earlier negation does not, e.g. "not...unless".
	negPolarityUnless = map[string]bool{
		"unless": true,
	}

	// Negative contractions that may slip through the tagger, including forms
	// typed without the apostrophe.
	ntContractions = map[string]bool{
		"didn't": true, "didnt": true,
		"don't": true, "dont": true,
		"can't": true, "cant": true,
		"couldn't": true, "couldnt": true,
		"won't": true, "wont": true,
		"wouldn't": true, "wouldnt": true,
	}

	articles = map[string]bool{
		"the": true, "an": true, "a": true,
	}

	// Words that are often non-propositional fillers. A spoken sentence made
	// wholly of these is propositionless.
	fillerWords = map[string]bool{
		"and": true, "or": true, "but": true, "if": true,
		"that": true, "just": true, "you": true, "know": true,
	}
)
