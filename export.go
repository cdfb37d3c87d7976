package ideadensity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Version is reported in TXT export headers.
const Version = "0.1.0"

// WriteCpidrCSV writes one row per surviving token: surface, tag, word flag,
// proposition flag, and the rule number for counted propositions.
func WriteCpidrCSV(w io.Writer, wl *WordList) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Token", "Tag", "Is Word", "Is Proposition", "Rule Number"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, item := range wl.Items {
		if item.Token == "" && item.Tag == "" {
			continue
		}
		rule := ""
		if item.IsProp {
			rule = strconv.Itoa(int(item.Rule))
		}
		row := []string{
			item.Token,
			item.Tag,
			formatBool(item.IsWord),
			formatBool(item.IsProp),
			rule,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDepidCSV writes one row per counted dependency.
func WriteDepidCSV(w io.Writer, deps []Dependency) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Token", "Dependency", "Head"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, d := range deps {
		if err := cw.Write([]string{d.Token, d.Dep, d.Head}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCpidrTxt writes a report in the layout of the original CPIDR program:
// a version header, the analyzed text or filename in quotes, one annotated
// line per token, then a summary. Filename, when non-empty, replaces the
// text excerpt in the header.
func WriteCpidrTxt(w io.Writer, res *Result, text, filename, taggerInfo string) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ideadensity %s\n", Version))
	sb.WriteString(fmt.Sprintf("Using %s\n\n\n", taggerInfo))

	if filename != "" {
		sb.WriteString(fmt.Sprintf("%q\n", filename))
	} else {
		sb.WriteString(fmt.Sprintf("%q\n", excerpt(text, 50)+"..."))
	}

	for _, item := range res.Words.Items {
		if item.Token == "" && item.Tag == "" {
			continue
		}
		rule := "   "
		if item.Rule != RuleNone {
			rule = fmt.Sprintf("%03d", int(item.Rule))
		}
		wordFlag := " "
		if item.IsWord {
			wordFlag = "W"
		}
		propFlag := " "
		if item.IsProp {
			propFlag = "P"
		}
		sb.WriteString(fmt.Sprintf(" %s %-4s %s %s %s\n",
			rule, item.Tag, wordFlag, propFlag, item.Token))
	}

	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("     %d propositions\n", res.PropositionCount))
	sb.WriteString(fmt.Sprintf("     %d words\n", res.WordCount))
	sb.WriteString(fmt.Sprintf(" %.3f density\n", res.Density))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
