// Package nouns is the curated list of Russian nouns shipped with the
// resolver. The list is embedded at build time and used to warm the cache
// and to supply gender, animacy and translation metadata for lookups.
package nouns

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/textclean"
)

//go:embed nouns.yaml
var nounsYAML []byte

// Difficulty is a learner tier. Tiers are cumulative: a higher tier includes
// every noun of the lower ones.
type Difficulty string

const (
	DifficultyCommon       Difficulty = "common"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var tiers = []Difficulty{DifficultyCommon, DifficultyIntermediate, DifficultyAdvanced}

func (d Difficulty) rank() int {
	for i, t := range tiers {
		if t == d {
			return i
		}
	}
	return -1
}

func (d Difficulty) IsValid() bool { return d.rank() >= 0 }

// ParseDifficulty maps user input to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", domain.NewValidationError("difficulty", fmt.Sprintf("unknown value %q, want common, intermediate or advanced", s))
	}
	return d, nil
}

// Noun is one entry of the curated list.
type Noun struct {
	Word        string         `yaml:"word" json:"word"`
	Gender      domain.Gender  `yaml:"gender" json:"gender"`
	Animacy     domain.Animacy `yaml:"animacy" json:"animacy"`
	Difficulty  Difficulty     `yaml:"difficulty" json:"difficulty"`
	Frequency   int            `yaml:"frequency" json:"frequency"`
	Translation string         `yaml:"translation" json:"translation"`
}

// Metadata returns the noun's descriptive fields in the form the resolver
// accepts.
func (n Noun) Metadata() domain.Metadata {
	return domain.Metadata{
		Gender:      n.Gender,
		Animacy:     n.Animacy,
		Translation: n.Translation,
	}
}

type document struct {
	Nouns []Noun `yaml:"nouns"`
}

var catalog = mustParse(nounsYAML)

func mustParse(data []byte) []Noun {
	list, err := parse(data)
	if err != nil {
		panic(err)
	}
	return list
}

func parse(data []byte) ([]Noun, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("nouns: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Nouns))
	for i, n := range doc.Nouns {
		if n.Word == "" {
			return nil, fmt.Errorf("nouns: entry %d has no word", i)
		}
		if !n.Gender.IsValid() {
			return nil, fmt.Errorf("nouns: %s: invalid gender %q", n.Word, n.Gender)
		}
		if !n.Animacy.IsValid() {
			return nil, fmt.Errorf("nouns: %s: invalid animacy %q", n.Word, n.Animacy)
		}
		if !n.Difficulty.IsValid() {
			return nil, fmt.Errorf("nouns: %s: invalid difficulty %q", n.Word, n.Difficulty)
		}
		if _, dup := seen[n.Word]; dup {
			return nil, fmt.Errorf("nouns: duplicate entry %s", n.Word)
		}
		seen[n.Word] = struct{}{}
	}
	return doc.Nouns, nil
}

// All returns every noun in list order. The slice is a copy.
func All() []Noun {
	out := make([]Noun, len(catalog))
	copy(out, catalog)
	return out
}

// ByDifficulty returns the nouns at tier d or below, in list order.
func ByDifficulty(d Difficulty) []Noun {
	limit := d.rank()
	var out []Noun
	for _, n := range catalog {
		if n.Difficulty.rank() <= limit {
			out = append(out, n)
		}
	}
	return out
}

// ByGender returns the nouns of gender g at tier d or below.
func ByGender(g domain.Gender, d Difficulty) []Noun {
	var out []Noun
	for _, n := range ByDifficulty(d) {
		if n.Gender == g {
			out = append(out, n)
		}
	}
	return out
}

// Find looks word up, ignoring case, stress marks and the ё/е distinction.
func Find(word string) (Noun, bool) {
	for _, n := range catalog {
		if textclean.Equivalent(n.Word, word, true) {
			return n, true
		}
	}
	return Noun{}, false
}

// Words returns the words of the list in alphabetical order.
func Words() []string {
	out := make([]string, len(catalog))
	for i, n := range catalog {
		out[i] = n.Word
	}
	sort.Strings(out)
	return out
}
