// Package textclean turns scraped markup fragments into plain Cyrillic text.
package textclean

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	supSubRe    = regexp.MustCompile(`(?is)<su[bp][^>]*>.*?</su[bp]>`)
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	namedEntRe  = regexp.MustCompile(`(?i)&[a-z]+;`)
	refMarkerRe = regexp.MustCompile(`\[[^\]]+\]`)
)

// invisible lists runes that never belong in a dictionary form: the combining
// acute stress mark, zero-width characters and footnote markers.
var invisible = runes.Predicate(func(r rune) bool {
	switch r {
	case '\u0301', '\u200B', '\u200C', '\u200D', '\uFEFF',
		'△', '*', '†', '‡', '§':
		return true
	}
	return false
})

// Sanitize removes all markup from a scraped fragment and returns plain text.
// Footnote content inside <sup>/<sub> is dropped before any other tag so
// markers cannot leak into the result. Tags are stripped repeatedly until the
// text stops shrinking, which also handles nested or malformed markup.
// The result is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(markup string) string {
	if markup == "" {
		return ""
	}

	s := supSubRe.ReplaceAllString(markup, "")

	for {
		prev := len(s)
		s = htmlTagRe.ReplaceAllString(s, "")
		if len(s) == prev {
			break
		}
	}

	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&mdash;", "—")
	s = namedEntRe.ReplaceAllString(s, "")

	s = refMarkerRe.ReplaceAllString(s, "")

	s = removeInvisible(s)

	return collapseSpace(s)
}

// StripStress removes combining stress marks and invisible characters without
// touching any other markup.
func StripStress(s string) string {
	return removeInvisible(s)
}

// Equivalent reports whether two forms are the same word, ignoring case,
// stress marks and surrounding whitespace. With ignoreYo, ё and е compare equal.
func Equivalent(a, b string, ignoreYo bool) bool {
	na := strings.TrimSpace(strings.ToLower(StripStress(a)))
	nb := strings.TrimSpace(strings.ToLower(StripStress(b)))
	if na == nb {
		return true
	}
	if !ignoreYo {
		return false
	}
	return strings.ReplaceAll(na, "ё", "е") == strings.ReplaceAll(nb, "ё", "е")
}

func removeInvisible(s string) string {
	t := transform.Chain(runes.Remove(invisible), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// collapseSpace folds every run of Unicode whitespace (including the
// non-breaking space) into a single ASCII space and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
