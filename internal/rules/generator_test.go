package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/padezh/internal/domain"
)

func TestInferGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want domain.Gender
	}{
		{"стол", domain.GenderMasculine},
		{"музей", domain.GenderMasculine},
		{"книга", domain.GenderFeminine},
		{"неделя", domain.GenderFeminine},
		{"ночь", domain.GenderFeminine},
		{"окно", domain.GenderNeuter},
		{"море", domain.GenderNeuter},
		{"бельё", domain.GenderNeuter},
		{"время", domain.GenderNeuter},
		{"xyz", domain.GenderMasculine},
		{"", domain.GenderMasculine},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InferGender(tt.word))
		})
	}
}

func TestGenerate_Singular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		meta domain.Metadata
		want map[domain.Case]string
	}{
		{
			name: "masculine hard inanimate",
			word: "стол",
			meta: domain.Metadata{Gender: domain.GenderMasculine, Animacy: domain.AnimacyInanimate},
			want: map[domain.Case]string{
				domain.CaseNominative:    "стол",
				domain.CaseGenitive:      "стола",
				domain.CaseDative:        "столу",
				domain.CaseAccusative:    "стол",
				domain.CaseInstrumental:  "столом",
				domain.CasePrepositional: "столе",
			},
		},
		{
			name: "masculine hard animate",
			word: "студент",
			meta: domain.Metadata{Gender: domain.GenderMasculine, Animacy: domain.AnimacyAnimate},
			want: map[domain.Case]string{
				domain.CaseGenitive:   "студента",
				domain.CaseAccusative: "студента",
			},
		},
		{
			name: "masculine soft -й",
			word: "музей",
			meta: domain.Metadata{},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "музея",
				domain.CaseDative:        "музею",
				domain.CaseAccusative:    "музей",
				domain.CaseInstrumental:  "музеем",
				domain.CasePrepositional: "музее",
			},
		},
		{
			name: "masculine soft -ь animate",
			word: "учитель",
			meta: domain.Metadata{Gender: domain.GenderMasculine, Animacy: domain.AnimacyAnimate},
			want: map[domain.Case]string{
				domain.CaseGenitive:   "учителя",
				domain.CaseAccusative: "учителя",
			},
		},
		{
			name: "feminine -а",
			word: "книга",
			meta: domain.Metadata{Gender: domain.GenderFeminine},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "книги",
				domain.CaseDative:        "книге",
				domain.CaseAccusative:    "книгу",
				domain.CaseInstrumental:  "книгой",
				domain.CasePrepositional: "книге",
			},
		},
		{
			name: "feminine -а hard stem",
			word: "вода",
			meta: domain.Metadata{Gender: domain.GenderFeminine},
			want: map[domain.Case]string{
				domain.CaseGenitive:   "воды",
				domain.CaseAccusative: "воду",
			},
		},
		{
			name: "feminine -я",
			word: "неделя",
			meta: domain.Metadata{},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "недели",
				domain.CaseDative:        "неделе",
				domain.CaseAccusative:    "неделю",
				domain.CaseInstrumental:  "неделей",
				domain.CasePrepositional: "неделе",
			},
		},
		{
			name: "feminine -ь",
			word: "дверь",
			meta: domain.Metadata{Gender: domain.GenderFeminine},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "двери",
				domain.CaseDative:        "двери",
				domain.CaseAccusative:    "дверь",
				domain.CaseInstrumental:  "дверью",
				domain.CasePrepositional: "двери",
			},
		},
		{
			name: "neuter -о",
			word: "окно",
			meta: domain.Metadata{},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "окна",
				domain.CaseDative:        "окну",
				domain.CaseAccusative:    "окно",
				domain.CaseInstrumental:  "окном",
				domain.CasePrepositional: "окне",
			},
		},
		{
			name: "neuter -е",
			word: "море",
			meta: domain.Metadata{},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "моря",
				domain.CaseDative:        "морю",
				domain.CaseAccusative:    "море",
				domain.CaseInstrumental:  "морем",
				domain.CasePrepositional: "море",
			},
		},
		{
			name: "neuter -ие",
			word: "здание",
			meta: domain.Metadata{},
			want: map[domain.Case]string{
				domain.CaseGenitive:      "здания",
				domain.CaseDative:        "зданию",
				domain.CaseInstrumental:  "зданием",
				domain.CasePrepositional: "здании",
			},
		},
	}

	g := NewGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := g.Generate(tt.word, tt.meta)
			require.NotNil(t, d)

			for c, want := range tt.want {
				assert.Equal(t, want, d.Forms.Singular[c], "case %s", c)
			}
		})
	}
}

func TestGenerate_SeedsPluralWithWord(t *testing.T) {
	t.Parallel()

	d := NewGenerator().Generate("стол", domain.Metadata{})

	for _, c := range domain.AllCases {
		assert.Equal(t, "стол", d.Forms.Plural[c])
	}
	assert.Equal(t, domain.OriginRules, d.Origin)
	assert.True(t, d.IsFallback)
	assert.Equal(t, domain.GenderMasculine, d.Gender)
	assert.Equal(t, domain.AnimacyInanimate, d.Animacy)
}

func TestGenerate_KeepsMetadata(t *testing.T) {
	t.Parallel()

	d := NewGenerator().Generate("книга", domain.Metadata{Translation: "book", Transliteration: "kniga"})

	assert.Equal(t, "book", d.Translation)
	assert.Equal(t, "kniga", d.Transliteration)
	assert.Equal(t, domain.GenderFeminine, d.Gender)
}

func TestApply_UnmatchedEndingLeavesFormsUntouched(t *testing.T) {
	t.Parallel()

	d := domain.NewDeclension("время")
	d.Fill("время")
	d.Gender = domain.GenderNeuter

	NewGenerator().Apply(d)

	for _, c := range domain.AllCases {
		assert.Equal(t, "время", d.Forms.Singular[c])
	}
}

func TestApply_MasculineVowelEndingUntouched(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"мужчина", "дядя", "домишко"} {
		d := NewGenerator().Generate(word, domain.Metadata{Gender: domain.GenderMasculine, Animacy: domain.AnimacyAnimate})

		for _, c := range domain.AllCases {
			assert.Equal(t, word, d.Forms.Singular[c], "%s %s", word, c)
		}
	}
}

func TestEndsInConsonant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"стол", true},
		{"врач", true},
		{"музей", false},
		{"конь", false},
		{"мужчина", false},
		{"кофе", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, endsInConsonant(tt.word), tt.word)
	}
}

func TestApply_NilIsNoop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { NewGenerator().Apply(nil) })
}
