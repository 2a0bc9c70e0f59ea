// Package wikitext pulls declension fields out of raw en.wiktionary wikitext
// with pattern matching. Extractors never fail: a missing field yields the
// zero value and the caller decides on a default.
package wikitext

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/padezh/internal/domain"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	wikiLinkRe   = regexp.MustCompile(`\[\[([^|\]]*\|)?([^\]]*)\]\]`)
	templateRe   = regexp.MustCompile(`\{\{[^}]+\}\}`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)

	masculineRe = regexp.MustCompile(`(?i)\|g=m\b|\|m\b|masculine`)
	feminineRe  = regexp.MustCompile(`(?i)\|g=f\b|\|f\b|feminine`)
	neuterRe    = regexp.MustCompile(`(?i)\|g=n\b|\|n\b|neuter`)

	inanimateRe = regexp.MustCompile(`(?i)\|a=in\b|\binanimate\b`)
	animateRe   = regexp.MustCompile(`(?i)\|a=an\b|\banimate\b`)

	translitRe    = regexp.MustCompile(`\|tr=([^|}\n]+)`)
	defLinkRe     = regexp.MustCompile(`# \[\[([^\]]+)\]\]`)
	defLineRe     = regexp.MustCompile(`(?m)^# ([^\n]+)`)
	namedCaseRe   = regexp.MustCompile(`(?i)\|(nom|gen|dat|acc|ins|prp)_(sg|pl)=([^|}\n]+)`)
	positionalRe  = regexp.MustCompile(`\|([1-6])=([^|}\n]+)`)
	nounTableRe   = regexp.MustCompile(`\{\{ru-noun-table\|([^}]+)\}\}`)
	russianHeadRe = regexp.MustCompile(`(?m)^==\s*Russian\s*==\s*$`)
	level2HeadRe  = regexp.MustCompile(`(?m)^==[^=].*==\s*$`)
)

// shortCases maps template case abbreviations to cases.
var shortCases = map[string]domain.Case{
	"nom": domain.CaseNominative,
	"gen": domain.CaseGenitive,
	"dat": domain.CaseDative,
	"acc": domain.CaseAccusative,
	"ins": domain.CaseInstrumental,
	"prp": domain.CasePrepositional,
}

// Gender returns the first grammatical gender marker found, checking
// masculine, feminine, then neuter. Empty when none is present.
func Gender(wt string) domain.Gender {
	switch {
	case masculineRe.MatchString(wt):
		return domain.GenderMasculine
	case feminineRe.MatchString(wt):
		return domain.GenderFeminine
	case neuterRe.MatchString(wt):
		return domain.GenderNeuter
	}
	return ""
}

// Animacy returns the animacy marker found in wt, defaulting to inanimate:
// most nouns in the quiz vocabulary are inanimate.
func Animacy(wt string) domain.Animacy {
	switch {
	case inanimateRe.MatchString(wt):
		return domain.AnimacyInanimate
	case animateRe.MatchString(wt):
		return domain.AnimacyAnimate
	}
	return domain.AnimacyInanimate
}

// Transliteration returns the |tr= parameter, if any.
func Transliteration(wt string) string {
	if m := translitRe.FindStringSubmatch(wt); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Translation returns the first English definition. A linked definition
// ("# [[table]]") is preferred; otherwise the first definition line is
// returned with wiki markup stripped.
func Translation(wt string) string {
	if m := defLinkRe.FindStringSubmatch(wt); m != nil {
		if t := StripMarkup("[[" + m[1] + "]]"); t != "" {
			return t
		}
	}
	if m := defLineRe.FindStringSubmatch(wt); m != nil {
		return StripMarkup(m[1])
	}
	return ""
}

// CaseForms extracts explicit case forms. Both the "<case>_<sg|pl>=" key-value
// convention and the positional "|1=".."|6=" convention (singular,
// nominative..prepositional) are recognised; positional values win.
// Only cases that were found are present in the result maps.
func CaseForms(wt string) domain.Forms {
	forms := domain.Forms{
		Singular: domain.CaseForms{},
		Plural:   domain.CaseForms{},
	}

	for _, m := range namedCaseRe.FindAllStringSubmatch(wt, -1) {
		c := shortCases[strings.ToLower(m[1])]
		value := StripMarkup(m[3])
		if value == "" {
			continue
		}
		target := forms.Singular
		if strings.EqualFold(m[2], "pl") {
			target = forms.Plural
		}
		if _, seen := target[c]; !seen {
			target[c] = value
		}
	}

	for _, m := range positionalRe.FindAllStringSubmatch(wt, -1) {
		idx := int(m[1][0] - '1')
		if value := StripMarkup(m[2]); value != "" {
			forms.Singular[domain.AllCases[idx]] = value
		}
	}

	return forms
}

// NounTableStem reports whether wt contains a {{ru-noun-table}} template and
// returns its first (stem) argument.
func NounTableStem(wt string) (string, bool) {
	m := nounTableRe.FindStringSubmatch(wt)
	if m == nil {
		return "", false
	}
	stem, _, _ := strings.Cut(m[1], "|")
	return strings.TrimSpace(stem), true
}

// Field looks up a single field by identifier: "gender", "animacy", "tr",
// "translation", or "<case>_<sg|pl>" such as "gen_sg".
func Field(wt, name string) (string, bool) {
	switch name {
	case "gender":
		g := Gender(wt)
		return string(g), g != ""
	case "animacy":
		return string(Animacy(wt)), true
	case "tr", "transliteration":
		v := Transliteration(wt)
		return v, v != ""
	case "translation":
		v := Translation(wt)
		return v, v != ""
	}

	short, number, ok := strings.Cut(name, "_")
	c, known := shortCases[short]
	if !ok || !known {
		return "", false
	}
	forms := CaseForms(wt)
	var v string
	switch number {
	case "sg":
		v = forms.Singular[c]
	case "pl":
		v = forms.Plural[c]
	}
	return v, v != ""
}

// RussianSection returns the ==Russian== language section of a page, or the
// whole text when no such header exists.
func RussianSection(wt string) string {
	loc := russianHeadRe.FindStringIndex(wt)
	if loc == nil {
		return wt
	}
	rest := wt[loc[1]:]
	if next := level2HeadRe.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return rest
}

// StripMarkup cleans a wikitext value: links keep their display text,
// templates are removed with their content, HTML tags are removed, &nbsp; is
// decoded and apostrophe emphasis is dropped.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = wikiLinkRe.ReplaceAllString(s, "$2")
	s = templateRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
