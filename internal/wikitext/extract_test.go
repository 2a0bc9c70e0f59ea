package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/padezh/internal/domain"
)

const stolPage = `==English==
===Noun===
# {{lb|en|furniture}} [[desk]]

==Russian==
===Noun===
{{ru-noun+|стол|tr=stol|g=m|a=in}}

# [[table]]
# [[desk]]

====Declension====
{{ru-decl-noun|nom_sg=стол|gen_sg=стола|dat_sg=столу|acc_sg=стол|ins_sg=столом|prp_sg=столе|nom_pl=столы|gen_pl=столов|dat_pl=столам|acc_pl=столы|ins_pl=столами|prp_pl=столах}}

==Serbo-Croatian==
===Noun===
# [[throne]]
`

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "стол", want: "стол"},
		{name: "wiki link", in: "[[стол]]", want: "стол"},
		{name: "piped wiki link", in: "[[стол|стола]]", want: "стола"},
		{name: "template removed", in: "{{l|ru|x}}стол", want: "стол"},
		{name: "html tag", in: "<b>стола</b>", want: "стола"},
		{name: "nbsp", in: "a&nbsp;b", want: "a b"},
		{name: "emphasis quotes", in: "''стол''", want: "стол"},
		{name: "surrounding space", in: "  столу \t", want: "столу"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkup(tt.in)
			if got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wt   string
		want domain.Gender
	}{
		{"{{ru-noun+|стол|g=m}}", domain.GenderMasculine},
		{"{{ru-noun|книга|f}}", domain.GenderFeminine},
		{"a neuter noun", domain.GenderNeuter},
		{"{{ru-noun+|окно|g=n}}", domain.GenderNeuter},
		{"nothing here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gender(tt.wt), tt.wt)
	}
}

func TestAnimacy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.AnimacyAnimate, Animacy("{{ru-noun+|кот|a=an}}"))
	assert.Equal(t, domain.AnimacyAnimate, Animacy("an animate noun"))
	assert.Equal(t, domain.AnimacyInanimate, Animacy("{{ru-noun+|стол|a=in}}"))
	assert.Equal(t, domain.AnimacyInanimate, Animacy("an inanimate noun"))
	assert.Equal(t, domain.AnimacyInanimate, Animacy(""))
}

func TestTransliteration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stol", Transliteration(stolPage))
	assert.Empty(t, Transliteration("{{ru-noun+|стол}}"))
}

func TestTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wt   string
		want string
	}{
		{name: "linked", wt: "# [[table]]", want: "table"},
		{name: "piped link", wt: "# [[desk|writing desk]]", want: "writing desk"},
		{name: "plain line", wt: "# {{lb|ru|colloquial}} a small ''house''", want: "a small house"},
		{name: "none", wt: "no definitions", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Translation(tt.wt))
		})
	}
}

func TestCaseForms_Named(t *testing.T) {
	t.Parallel()

	got := CaseForms(stolPage)

	assert.Equal(t, domain.CaseForms{
		domain.CaseNominative:    "стол",
		domain.CaseGenitive:      "стола",
		domain.CaseDative:        "столу",
		domain.CaseAccusative:    "стол",
		domain.CaseInstrumental:  "столом",
		domain.CasePrepositional: "столе",
	}, got.Singular)
	assert.Equal(t, "столами", got.Plural[domain.CaseInstrumental])
	assert.Len(t, got.Plural, 6)
}

func TestCaseForms_PositionalWins(t *testing.T) {
	t.Parallel()

	got := CaseForms("{{ru-decl|nom_sg=котик|1=кот|2=кота|3=коту}}")

	assert.Equal(t, "кот", got.Singular[domain.CaseNominative])
	assert.Equal(t, "кота", got.Singular[domain.CaseGenitive])
	assert.Equal(t, "коту", got.Singular[domain.CaseDative])
	assert.NotContains(t, got.Singular, domain.CaseAccusative)
	assert.Empty(t, got.Plural)
}

func TestCaseForms_FirstNamedOccurrenceWins(t *testing.T) {
	t.Parallel()

	got := CaseForms("|gen_sg=стола|gen_sg=столя")

	assert.Equal(t, "стола", got.Singular[domain.CaseGenitive])
}

func TestNounTableStem(t *testing.T) {
	t.Parallel()

	stem, ok := NounTableStem("{{ru-noun-table|стол|b}}")
	assert.True(t, ok)
	assert.Equal(t, "стол", stem)

	_, ok = NounTableStem(stolPage)
	assert.False(t, ok)
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "gen_sg", want: "стола", wantOK: true},
		{name: "prp_pl", want: "столах", wantOK: true},
		{name: "gender", want: "masculine", wantOK: true},
		{name: "animacy", want: "inanimate", wantOK: true},
		{name: "tr", want: "stol", wantOK: true},
		{name: "translation", want: "table", wantOK: true},
		{name: "xyz_sg"},
		{name: "gen_du"},
		{name: "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Field(stolPage, tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRussianSection(t *testing.T) {
	t.Parallel()

	section := RussianSection(stolPage)
	assert.Contains(t, section, "# [[table]]")
	assert.NotContains(t, section, "throne")
	assert.NotContains(t, section, "furniture")

	assert.Equal(t, "# [[desk]]", RussianSection("# [[desk]]"))
}
