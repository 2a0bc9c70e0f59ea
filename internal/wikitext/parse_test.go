package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/rules"
	"github.com/heartmarshall/padezh/internal/validate"
)

func TestParser_Parse_ExplicitForms(t *testing.T) {
	t.Parallel()

	d := NewParser(rules.NewGenerator()).Parse("стол", stolPage, domain.Metadata{})
	require.NotNil(t, d)

	assert.Equal(t, "стол", d.Word)
	assert.Equal(t, domain.GenderMasculine, d.Gender)
	assert.Equal(t, domain.AnimacyInanimate, d.Animacy)
	assert.Equal(t, "table", d.Translation)
	assert.Equal(t, "stol", d.Transliteration)
	assert.Equal(t, domain.OriginEnWiktionary, d.Origin)
	assert.Equal(t, "стола", d.Form(domain.NumberSingular, domain.CaseGenitive))
	assert.Equal(t, "столов", d.Form(domain.NumberPlural, domain.CaseGenitive))
	assert.NoError(t, validate.Check(d))
}

func TestParser_Parse_MetadataWins(t *testing.T) {
	t.Parallel()

	meta := domain.Metadata{
		Gender:          domain.GenderFeminine,
		Animacy:         domain.AnimacyAnimate,
		Translation:     "board",
		Transliteration: "ignored",
	}
	d := NewParser(rules.NewGenerator()).Parse("стол", stolPage, meta)

	assert.Equal(t, domain.GenderFeminine, d.Gender)
	assert.Equal(t, domain.AnimacyAnimate, d.Animacy)
	assert.Equal(t, "board", d.Translation)
	assert.Equal(t, "stol", d.Transliteration, "page transliteration is preferred")
}

func TestParser_Parse_NounTableUsesRules(t *testing.T) {
	t.Parallel()

	wt := "==Russian==\n{{ru-noun+|книга|g=f|a=in}}\n# [[book]]\n{{ru-noun-table|книга}}\n"
	d := NewParser(rules.NewGenerator()).Parse("книга", wt, domain.Metadata{})

	assert.Equal(t, domain.GenderFeminine, d.Gender)
	assert.Equal(t, "книги", d.Form(domain.NumberSingular, domain.CaseGenitive))
	assert.Equal(t, "книгу", d.Form(domain.NumberSingular, domain.CaseAccusative))
	assert.Equal(t, "книга", d.Form(domain.NumberPlural, domain.CaseGenitive))
	assert.Equal(t, "book", d.Translation)
}

func TestParser_Parse_EmptyPage(t *testing.T) {
	t.Parallel()

	d := NewParser(rules.NewGenerator()).Parse("xyz", "", domain.Metadata{})

	for _, c := range domain.AllCases {
		assert.Equal(t, "xyz", d.Form(domain.NumberSingular, c))
		assert.Equal(t, "xyz", d.Form(domain.NumberPlural, c))
	}
	assert.Empty(t, d.Gender)
	assert.Equal(t, domain.AnimacyInanimate, d.Animacy)
	assert.False(t, validate.IsValidDeclension(d))
}
