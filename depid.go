package ideadensity

import (
	"strings"
)

// Dependency labels counted as propositions by DEPID.
var PropositionDependencies = map[string]bool{
	"advcl": true, "advmod": true, "amod": true, "appos": true,
	"cc": true, "csubj": true, "csubjpass": true, "det": true,
	"neg": true, "npadvmod": true, "nsubj": true, "nsubjpass": true,
	"nummod": true, "poss": true, "predet": true, "preconj": true,
	"prep": true, "quantmod": true, "tmod": true, "vmod": true,
}

// Determiners excluded from the count when their filter is on.
var ExcludedDeterminers = map[string]bool{"a": true, "an": true, "the": true}

// Nominal subjects excluded from the count when their filter is on.
var ExcludedNsubjs = map[string]bool{"it": true, "this": true}

// DepToken is one token of a dependency parse. Head is the sentence-relative
// index of the token's syntactic head; the root points at itself.
type DepToken struct {
	Text    string `json:"text"`
	Tag     string `json:"tag"`
	Pos     string `json:"pos"`
	Dep     string `json:"dep"`
	Head    int    `json:"head"`
	Index   int    `json:"i"`
	IsPunct bool   `json:"is_punct"`
	IsSpace bool   `json:"is_space"`
}

// DepSentence is one parsed sentence.
type DepSentence struct {
	Tokens []DepToken `json:"tokens"`
}

// Dependency is a counted proposition: a token, its dependency label, and the
// surface of its head.
type Dependency struct {
	Token string
	Dep   string
	Head  string
}

// SentenceFilter reports whether a sentence should be counted at all.
// TokenFilter reports whether a single token should be counted.
type (
	SentenceFilter func(DepSentence) bool
	TokenFilter    func(DepToken) bool
)

// FilterIYouSubject drops sentences whose main verb has "I" or "you" as its
// subject, the usual opener of conversational filler like "I think that...".
func FilterIYouSubject(sent DepSentence) bool {
	for _, t := range sent.Tokens {
		lower := strings.ToLower(t.Text)
		if (lower == "i" || lower == "you") && t.Dep == "nsubj" &&
			t.Head >= 0 && t.Head < len(sent.Tokens) &&
			sent.Tokens[t.Head].Dep == "ROOT" {
			return false
		}
	}
	return true
}

// FilterExcludedDeterminers drops articles parsed as determiners.
func FilterExcludedDeterminers(t DepToken) bool {
	return !(t.Dep == "det" && ExcludedDeterminers[strings.ToLower(t.Text)])
}

// FilterExcludedNsubjs drops dummy subjects "it" and "this".
func FilterExcludedNsubjs(t DepToken) bool {
	return !(t.Dep == "nsubj" && ExcludedNsubjs[strings.ToLower(t.Text)])
}

// FilterCC drops coordinating conjunctions.
func FilterCC(t DepToken) bool {
	return t.Dep != "cc"
}

// DepidOptions selects the DEPID variant and its filters. Extra filters run
// in addition to the stock ones enabled by the Use flags.
type DepidOptions struct {
	// DepidR counts each distinct (token, dep, head) triple once.
	DepidR bool

	UseIYouSubjectFilter        bool
	UseExcludedDeterminerFilter bool
	UseExcludedCCFilter         bool
	UseExcludedNsubjFilter      bool

	SentenceFilters []SentenceFilter
	TokenFilters    []TokenFilter
}

// DefaultDepidOptions enables all stock filters, matching the behavior
// described by Sirts et al. for DEPID on written text.
func DefaultDepidOptions() DepidOptions {
	return DepidOptions{
		UseIYouSubjectFilter:        true,
		UseExcludedDeterminerFilter: true,
		UseExcludedCCFilter:         true,
		UseExcludedNsubjFilter:      true,
	}
}

// DepidResult holds a DEPID score. WordCount covers every non-punctuation,
// non-space token of the input, including tokens in filtered sentences.
type DepidResult struct {
	Density      float64
	WordCount    int
	Dependencies []Dependency
}

// DepidFromSentences scores already parsed sentences. Like RateTagged it is
// pure and needs no running parser.
func DepidFromSentences(sents []DepSentence, opts DepidOptions) DepidResult {
	var res DepidResult
	for _, s := range sents {
		for _, t := range s.Tokens {
			if !t.IsPunct && !t.IsSpace {
				res.WordCount++
			}
		}
	}

	sentFilters := make([]SentenceFilter, 0, len(opts.SentenceFilters)+1)
	if opts.UseIYouSubjectFilter {
		sentFilters = append(sentFilters, FilterIYouSubject)
	}
	sentFilters = append(sentFilters, opts.SentenceFilters...)

	tokFilters := make([]TokenFilter, 0, len(opts.TokenFilters)+3)
	if opts.UseExcludedDeterminerFilter {
		tokFilters = append(tokFilters, FilterExcludedDeterminers)
	}
	if opts.UseExcludedCCFilter {
		tokFilters = append(tokFilters, FilterCC)
	}
	if opts.UseExcludedNsubjFilter {
		tokFilters = append(tokFilters, FilterExcludedNsubjs)
	}
	tokFilters = append(tokFilters, opts.TokenFilters...)

	var seen map[Dependency]bool
	if opts.DepidR {
		seen = make(map[Dependency]bool)
	}

sentences:
	for _, s := range sents {
		for _, f := range sentFilters {
			if !f(s) {
				continue sentences
			}
		}
	tokens:
		for _, t := range s.Tokens {
			if !PropositionDependencies[t.Dep] {
				continue
			}
			for _, f := range tokFilters {
				if !f(t) {
					continue tokens
				}
			}
			head := ""
			if t.Head >= 0 && t.Head < len(s.Tokens) {
				head = s.Tokens[t.Head].Text
			}
			d := Dependency{Token: t.Text, Dep: t.Dep, Head: head}
			if opts.DepidR {
				if seen[d] {
					continue
				}
				seen[d] = true
			}
			res.Dependencies = append(res.Dependencies, d)
		}
	}

	if res.WordCount > 0 {
		res.Density = float64(len(res.Dependencies)) / float64(res.WordCount)
	}
	return res
}
