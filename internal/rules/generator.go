// Package rules generates approximate singular case forms for Russian nouns by
// suffix substitution. It is a last-resort fallback: stress-dependent
// spelling, consonant mutation and irregular stems are not modelled.
package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/padezh/internal/domain"
)

// endings lists the suffixes appended to a stem for the non-nominative,
// non-accusative singular cases.
type endings struct {
	genitive      string
	dative        string
	instrumental  string
	prepositional string
}

var (
	masculineHard = endings{genitive: "а", dative: "у", instrumental: "ом", prepositional: "е"}
	masculineSoft = endings{genitive: "я", dative: "ю", instrumental: "ем", prepositional: "е"}
	feminineA     = endings{genitive: "ы", dative: "е", instrumental: "ой", prepositional: "е"}
	feminineYa    = endings{genitive: "и", dative: "е", instrumental: "ей", prepositional: "е"}
	feminineSoft  = endings{genitive: "и", dative: "и", instrumental: "ью", prepositional: "и"}
	neuterO       = endings{genitive: "а", dative: "у", instrumental: "ом", prepositional: "е"}
	neuterE       = endings{genitive: "я", dative: "ю", instrumental: "ем", prepositional: "е"}
	neuterIe      = endings{genitive: "ия", dative: "ию", instrumental: "ием", prepositional: "ии"}
)

// Generator applies the suffix rules. The zero value is ready to use.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator { return &Generator{} }

// InferGender guesses grammatical gender from the word ending:
// -мя, -о, -е, -ё are neuter; -а, -я, -ь are feminine; everything else,
// including hard consonants and -й, is masculine.
func InferGender(word string) domain.Gender {
	w := strings.ToLower(strings.TrimSpace(word))
	switch {
	case strings.HasSuffix(w, "мя"):
		return domain.GenderNeuter
	case hasAnySuffix(w, "а", "я", "ь"):
		return domain.GenderFeminine
	case hasAnySuffix(w, "о", "е", "ё"):
		return domain.GenderNeuter
	default:
		return domain.GenderMasculine
	}
}

// Generate builds a best-effort Declension for word. All twelve slots are
// seeded with the bare word, then the singular paradigm is rewritten by the
// gender rules. Plural forms are not attempted. Gender is inferred and
// animacy defaults to inanimate when meta does not supply them.
func (g *Generator) Generate(word string, meta domain.Metadata) *domain.Declension {
	d := domain.NewDeclension(word)
	d.Fill(word)

	d.Gender = meta.Gender
	if !d.Gender.IsValid() {
		d.Gender = InferGender(word)
	}
	d.Animacy = meta.Animacy
	if !d.Animacy.IsValid() {
		d.Animacy = domain.AnimacyInanimate
	}
	d.Translation = meta.Translation
	d.Transliteration = meta.Transliteration
	d.Origin = domain.OriginRules
	d.IsFallback = true

	g.Apply(d)
	return d
}

// Apply rewrites the singular forms of d according to d.Gender and d.Animacy.
// Words whose ending matches no rule for their gender are left unchanged.
// Neuter -ие is matched before -е on purpose, so здание gives здания.
func (g *Generator) Apply(d *domain.Declension) {
	if d == nil {
		return
	}
	d.Ensure()
	word := d.Word
	animate := d.Animacy == domain.AnimacyAnimate

	switch d.Gender {
	case domain.GenderMasculine:
		switch {
		case hasAnySuffix(word, "ь", "й"):
			setSingular(d, dropLast(word), masculineSoft, "", animate)
		case endsInConsonant(word):
			setSingular(d, word, masculineHard, "", animate)
		}

	case domain.GenderFeminine:
		switch {
		case strings.HasSuffix(word, "а"):
			setSingular(d, dropLast(word), feminineA, "у", false)
		case strings.HasSuffix(word, "я"):
			setSingular(d, dropLast(word), feminineYa, "ю", false)
		case strings.HasSuffix(word, "ь"):
			setSingular(d, dropLast(word), feminineSoft, word, false)
		}

	case domain.GenderNeuter:
		switch {
		case strings.HasSuffix(word, "о"):
			setSingular(d, dropLast(word), neuterO, word, false)
		case strings.HasSuffix(word, "ие"):
			setSingular(d, strings.TrimSuffix(word, "ие"), neuterIe, word, false)
		case hasAnySuffix(word, "е", "ё"):
			setSingular(d, dropLast(word), neuterE, word, false)
		}
	}
}

// setSingular writes the singular paradigm for stem. accusative is either a
// literal form (when it equals the nominative), an ending appended to stem,
// or empty for the masculine rule where animacy decides.
func setSingular(d *domain.Declension, stem string, e endings, accusative string, animate bool) {
	s := d.Forms.Singular
	s[domain.CaseNominative] = d.Word
	s[domain.CaseGenitive] = stem + spell(stem, e.genitive)
	s[domain.CaseDative] = stem + e.dative
	s[domain.CaseInstrumental] = stem + e.instrumental
	s[domain.CasePrepositional] = stem + e.prepositional

	switch {
	case accusative == "":
		if animate {
			s[domain.CaseAccusative] = s[domain.CaseGenitive]
		} else {
			s[domain.CaseAccusative] = d.Word
		}
	case accusative == d.Word:
		s[domain.CaseAccusative] = d.Word
	default:
		s[domain.CaseAccusative] = stem + accusative
	}
}

// spell applies the seven-letter rule: ы is written и after г, к, х and the
// sibilants ж, ч, ш, щ.
func spell(stem, ending string) string {
	if ending != "ы" {
		return ending
	}
	last, _ := utf8.DecodeLastRuneInString(stem)
	if strings.ContainsRune("гкхжчшщ", last) {
		return "и"
	}
	return ending
}

// endsInConsonant reports whether word ends in a consonant letter other
// than й. Signs and vowels are excluded.
func endsInConsonant(word string) bool {
	last, _ := utf8.DecodeLastRuneInString(strings.ToLower(word))
	return unicode.Is(unicode.Cyrillic, last) && !strings.ContainsRune("аеёиоуыэюяьъй", last)
}

func dropLast(word string) string {
	_, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size]
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}
