package domain

// Case is one of the six Russian grammatical cases.
type Case string

const (
	CaseNominative    Case = "nominative"
	CaseGenitive      Case = "genitive"
	CaseDative        Case = "dative"
	CaseAccusative    Case = "accusative"
	CaseInstrumental  Case = "instrumental"
	CasePrepositional Case = "prepositional"
)

// AllCases lists the cases in canonical order (nominative..prepositional).
var AllCases = []Case{
	CaseNominative,
	CaseGenitive,
	CaseDative,
	CaseAccusative,
	CaseInstrumental,
	CasePrepositional,
}

func (c Case) String() string { return string(c) }

func (c Case) IsValid() bool {
	switch c {
	case CaseNominative, CaseGenitive, CaseDative, CaseAccusative, CaseInstrumental, CasePrepositional:
		return true
	}
	return false
}

// Number distinguishes singular from plural paradigms.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) String() string { return string(n) }

// Gender is the grammatical gender of a noun. The zero value means unknown.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// Animacy distinguishes living-being nouns, which affects the accusative.
type Animacy string

const (
	AnimacyAnimate   Animacy = "animate"
	AnimacyInanimate Animacy = "inanimate"
)

func (a Animacy) String() string { return string(a) }

func (a Animacy) IsValid() bool {
	return a == AnimacyAnimate || a == AnimacyInanimate
}

// Origin names the source that produced a Declension.
type Origin string

const (
	OriginRuWiktionary Origin = "ru-wiktionary"
	OriginIrregular    Origin = "irregular"
	OriginEnWiktionary Origin = "en-wiktionary"
	OriginRules        Origin = "rules"
	OriginPlaceholder  Origin = "placeholder"
)

func (o Origin) String() string { return string(o) }

// ParseGender maps loose user input ("m", "masc", "feminine"...) to a Gender.
// Unknown input yields the zero value.
func ParseGender(s string) Gender {
	switch NormalizeWord(s) {
	case "m", "masc", "masculine", "муж", "муж.":
		return GenderMasculine
	case "f", "fem", "feminine", "жен", "жен.":
		return GenderFeminine
	case "n", "neut", "neuter", "ср", "ср.":
		return GenderNeuter
	}
	return ""
}

// ParseAnimacy maps loose user input to an Animacy. Unknown input yields the
// zero value.
func ParseAnimacy(s string) Animacy {
	switch NormalizeWord(s) {
	case "an", "anim", "animate", "одуш", "одуш.":
		return AnimacyAnimate
	case "in", "inan", "inanimate", "неодуш", "неодуш.":
		return AnimacyInanimate
	}
	return ""
}
