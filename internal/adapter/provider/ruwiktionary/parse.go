// Package ruwiktionary is the primary declension source: it scrapes the
// morphology table from ru.wiktionary article HTML.
package ruwiktionary

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/textclean"
)

const (
	// minTableCases is the number of singular cases a table must yield.
	minTableCases = 4
	// minInlineForms is the number of inline matches the text fallback needs.
	minInlineForms = 2
)

// Table class fingerprints, tried in order.
var tableFingerprints = []*regexp.Regexp{
	regexp.MustCompile(`morfotable.*ru`),
	regexp.MustCompile(`inflection`),
}

type casePattern struct {
	c  domain.Case
	re *regexp.Regexp
}

// Row labels are matched whole: "Д." must not match inside "Тв." or "Пр.".
var caseLabels = []casePattern{
	{domain.CaseNominative, regexp.MustCompile(`(?i)^Им\.$`)},
	{domain.CaseGenitive, regexp.MustCompile(`(?i)^Р\.$`)},
	{domain.CaseDative, regexp.MustCompile(`(?i)^Д\.$`)},
	{domain.CaseAccusative, regexp.MustCompile(`(?i)^В\.$`)},
	{domain.CaseInstrumental, regexp.MustCompile(`(?i)^Тв\.$`)},
	{domain.CasePrepositional, regexp.MustCompile(`(?i)^Пр\.$`)},
}

var inlinePatterns = []casePattern{
	{domain.CaseGenitive, regexp.MustCompile(`(?i)род(?:ительный)?\.?\s*п\.?\s*ед\.?\s*ч\.?\s*[—-]\s*([а-яё]+)`)},
	{domain.CaseDative, regexp.MustCompile(`(?i)дат(?:ельный)?\.?\s*п\.?\s*ед\.?\s*ч\.?\s*[—-]\s*([а-яё]+)`)},
	{domain.CaseAccusative, regexp.MustCompile(`(?i)вин(?:ительный)?\.?\s*п\.?\s*ед\.?\s*ч\.?\s*[—-]\s*([а-яё]+)`)},
	{domain.CaseInstrumental, regexp.MustCompile(`(?i)твор(?:ительный)?\.?\s*п\.?\s*ед\.?\s*ч\.?\s*[—-]\s*([а-яё]+)`)},
	{domain.CasePrepositional, regexp.MustCompile(`(?i)предл(?:ожный)?\.?\s*п\.?\s*ед\.?\s*ч\.?\s*[—-]\s*([а-яё]+)`)},
}

var (
	genderPatterns = []struct {
		g  domain.Gender
		re *regexp.Regexp
	}{
		{domain.GenderMasculine, regexp.MustCompile(`(?i)мужск(?:ой|ого)\s+род|муж\.\s*р\.|masculine`)},
		{domain.GenderFeminine, regexp.MustCompile(`(?i)женск(?:ий|ого)\s+род|жен\.\s*р\.|feminine`)},
		{domain.GenderNeuter, regexp.MustCompile(`(?i)средн(?:ий|его)\s+род|ср\.\s*р\.|neuter`)},
	}

	inanimateRe = regexp.MustCompile(`(?i)неодушевл[её]нн|неодуш\.|inanimate`)
	animateRe   = regexp.MustCompile(`(?i)одушевл[её]нн|одуш\.|animate`)
)

// ParseHTML extracts a declension for word from article HTML. It returns
// nil, nil when neither a declension table nor enough inline forms are
// found. The result has Origin ru-wiktionary and FromPrimarySource set; the
// caller fills SourceURL.
func ParseHTML(word string, body []byte) (*domain.Declension, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	text := textclean.StripStress(doc.Text())

	forms, ok := tableForms(doc)
	if !ok {
		forms, ok = inlineForms(word, text)
	}
	if !ok {
		return nil, nil
	}

	d := domain.NewDeclension(word)
	for c, v := range forms.Singular {
		d.SetForm(domain.NumberSingular, c, v)
	}
	for c, v := range forms.Plural {
		d.SetForm(domain.NumberPlural, c, v)
	}
	d.Gender = InferGender(text)
	d.Animacy = InferAnimacy(text)
	d.Origin = domain.OriginRuWiktionary
	d.FromPrimarySource = true

	return d, nil
}

// tableForms returns the forms of the first table matching a class
// fingerprint that yields enough singular cases.
func tableForms(doc *goquery.Document) (domain.Forms, bool) {
	for _, fp := range tableFingerprints {
		var found domain.Forms
		ok := false

		doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
			class, _ := table.Attr("class")
			if !fp.MatchString(class) {
				return true
			}
			forms := extractTable(table)
			if len(forms.Singular) >= minTableCases {
				found, ok = forms, true
				return false
			}
			return true
		})

		if ok {
			return found, true
		}
	}
	return domain.Forms{}, false
}

// extractTable reads rows of the form [case label] [singular] [plural].
func extractTable(table *goquery.Selection) domain.Forms {
	forms := domain.Forms{
		Singular: domain.CaseForms{},
		Plural:   domain.CaseForms{},
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("th, td")
		if cells.Length() < 2 {
			return
		}

		c, ok := matchCaseLabel(cellText(cells.Eq(0)))
		if !ok {
			return
		}

		if v := cellForm(cells.Eq(1)); v != "" {
			forms.Singular[c] = v
		}
		if cells.Length() >= 3 {
			if v := cellForm(cells.Eq(2)); v != "" {
				forms.Plural[c] = v
			}
		}
	})

	return forms
}

func matchCaseLabel(label string) (domain.Case, bool) {
	for _, p := range caseLabels {
		if p.re.MatchString(label) {
			return p.c, true
		}
	}
	return "", false
}

func cellText(cell *goquery.Selection) string {
	markup, err := cell.Html()
	if err != nil {
		return textclean.Sanitize(cell.Text())
	}
	return textclean.Sanitize(markup)
}

// cellForm returns the first spelling variant of a cell, or "" when the
// cell is empty or holds a dash.
func cellForm(cell *goquery.Selection) string {
	form := cellText(cell)
	if first, _, found := strings.Cut(form, "//"); found {
		form = strings.TrimSpace(first)
	}
	if !domain.IsPresent(form) {
		return ""
	}
	return form
}

// inlineForms scans page text for phrases like "род. п. ед. ч. — стола".
func inlineForms(word, text string) (domain.Forms, bool) {
	forms := domain.Forms{
		Singular: domain.CaseForms{domain.CaseNominative: word},
		Plural:   domain.CaseForms{},
	}

	found := 0
	for _, p := range inlinePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			forms.Singular[p.c] = strings.TrimSpace(m[1])
			found++
		}
	}

	return forms, found >= minInlineForms
}

// InferGender returns the gender whose marker appears earliest in text, or
// "" when none does.
func InferGender(text string) domain.Gender {
	var (
		best domain.Gender
		pos  = -1
	)
	for _, p := range genderPatterns {
		loc := p.re.FindStringIndex(text)
		if loc != nil && (pos < 0 || loc[0] < pos) {
			best, pos = p.g, loc[0]
		}
	}
	return best
}

// InferAnimacy reads the animacy marker from text, or returns "" when the
// page has none so caller metadata can fill it.
func InferAnimacy(text string) domain.Animacy {
	switch {
	case inanimateRe.MatchString(text):
		return domain.AnimacyInanimate
	case animateRe.MatchString(text):
		return domain.AnimacyAnimate
	}
	return ""
}
