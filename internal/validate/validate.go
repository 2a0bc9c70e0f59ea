// Package validate decides whether a populated Declension can be trusted.
// Scraped sources fail silently, so this check is the circuit breaker that
// keeps degenerate parses out of the cache and away from callers.
package validate

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/padezh/internal/domain"
)

const (
	// MinForms is the minimum number of non-empty forms across both numbers.
	MinForms = 8

	// minSingularForUniformCheck is the singular form count from which a
	// single repeated value is treated as a parser failure.
	minSingularForUniformCheck = 4
)

// Rule violations reported by Check.
var (
	ErrNil                  = errors.New("declension is nil")
	ErrMissingNumber        = errors.New("singular or plural paradigm missing")
	ErrTooFewForms          = errors.New("too few forms")
	ErrEmptyForm            = errors.New("empty form")
	ErrAllIdentical         = errors.New("all forms identical")
	ErrSingularIdentical    = errors.New("all singular forms identical")
	ErrSingularEqualsPlural = errors.New("singular equals plural exactly")
)

// IsValidDeclension reports whether d passes every validation rule.
func IsValidDeclension(d *domain.Declension) bool {
	return Check(d) == nil
}

// Check returns nil for a trustworthy declension, or an error wrapping the
// first violated rule.
func Check(d *domain.Declension) error {
	if d == nil {
		return ErrNil
	}
	singular, plural := d.Forms.Singular, d.Forms.Plural
	if singular == nil || plural == nil {
		return ErrMissingNumber
	}

	singularForms := collect(singular)
	pluralForms := collect(plural)
	all := append(append([]string{}, singularForms...), pluralForms...)

	if len(all) < MinForms {
		return fmt.Errorf("%w: %d of %d required", ErrTooFewForms, len(all), MinForms)
	}

	// collect drops empty slots, so this only fires for whitespace-only values.
	for _, f := range all {
		if isBlank(f) {
			return ErrEmptyForm
		}
	}

	if len(distinct(all)) == 1 {
		return fmt.Errorf("%w: %q", ErrAllIdentical, all[0])
	}

	singularSet := distinct(singularForms)
	if len(singularForms) >= minSingularForUniformCheck && len(singularSet) == 1 {
		return ErrSingularIdentical
	}

	// Heuristic: every singular form appears in plural and plural adds nothing
	// new. Overlaps such as accusative = nominative are fine on their own.
	pluralSet := distinct(pluralForms)
	overlap := 0
	for f := range singularSet {
		if _, ok := pluralSet[f]; ok {
			overlap++
		}
	}
	if len(singularSet) > 0 && overlap == len(singularSet) && overlap == len(pluralSet) {
		return ErrSingularEqualsPlural
	}

	return nil
}

// collect returns the non-empty forms of a paradigm in canonical case order.
func collect(f domain.CaseForms) []string {
	out := make([]string, 0, len(domain.AllCases))
	for _, c := range domain.AllCases {
		if v := f[c]; v != "" {
			out = append(out, v)
		}
	}
	return out
}

func distinct(forms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		set[f] = struct{}{}
	}
	return set
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}
