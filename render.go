package ideadensity

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/tidwall/pretty"
)

// spaceBefore reports whether a space belongs before tok when joining tokens
// back into text. Punctuation and contraction fragments attach to the
// preceding token.
func spaceBefore(tok string) bool {
	if tok == "" {
		return false
	}
	r := []rune(tok)[0]
	if r == '\'' || r == '’' {
		return false
	}
	if strings.HasPrefix(tok, "n't") {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Summary renders the counts in the classic one-line form.
func (res *Result) Summary() string {
	return fmt.Sprintf("%d propositions in %d words, density %.3f",
		res.PropositionCount, res.WordCount, res.Density)
}

// Dump pretty-prints the arena state for debugging.
func (wl *WordList) Dump() {
	for i, w := range wl.Items {
		if w.IsBlank() {
			continue
		}
		pp.Printf("%03d %s/%s word=%v prop=%v rule=%d\n",
			i, w.Token, w.Tag, w.IsWord, w.IsProp, int(w.Rule))
	}
}

// DumpJSON pretty-prints a DEPID result as colorized JSON.
func (res DepidResult) DumpJSON() {
	b, err := json.Marshal(res)
	if err != nil {
		color.Redln(err)
		return
	}
	fmt.Println(string(pretty.Color(pretty.Pretty(b), nil)))
}
