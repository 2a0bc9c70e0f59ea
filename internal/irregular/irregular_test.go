package irregular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/validate"
)

func TestLookup_AllEntriesValid(t *testing.T) {
	t.Parallel()

	for _, w := range Words() {
		t.Run(w, func(t *testing.T) {
			t.Parallel()

			d, ok := Lookup(w)
			require.True(t, ok)
			assert.NoError(t, validate.Check(d))
			assert.Equal(t, w, d.Word)
			assert.Equal(t, w, d.Form(domain.NumberSingular, domain.CaseNominative))
			assert.Equal(t, domain.OriginIrregular, d.Origin)
			assert.False(t, d.IsFallback)
			assert.True(t, d.Gender.IsValid())
			assert.True(t, d.Animacy.IsValid())
			assert.NotEmpty(t, d.Translation)
			assert.NotEmpty(t, d.Transliteration)
			assert.NotEmpty(t, Note(w))
			assert.Contains(t, d.SourceURL, "https://ru.wiktionary.org/wiki/")
		})
	}
}

func TestLookup_Vremya(t *testing.T) {
	t.Parallel()

	d, ok := Lookup("время")
	require.True(t, ok)

	assert.Equal(t, "времени", d.Form(domain.NumberSingular, domain.CaseGenitive))
	assert.Equal(t, "временем", d.Form(domain.NumberSingular, domain.CaseInstrumental))
	assert.Equal(t, "времена", d.Form(domain.NumberPlural, domain.CaseNominative))
	assert.Equal(t, "времён", d.Form(domain.NumberPlural, domain.CaseGenitive))
	assert.Equal(t, domain.GenderNeuter, d.Gender)
	assert.Equal(t, "time", d.Translation)
}

func TestLookup_SuppletivePlural(t *testing.T) {
	t.Parallel()

	d, ok := Lookup("человек")
	require.True(t, ok)
	assert.Equal(t, "люди", d.Form(domain.NumberPlural, domain.CaseNominative))
	assert.Equal(t, "людей", d.Form(domain.NumberPlural, domain.CaseAccusative))
	assert.Equal(t, domain.AnimacyAnimate, d.Animacy)

	d, ok = Lookup("ребёнок")
	require.True(t, ok)
	assert.Equal(t, "детьми", d.Form(domain.NumberPlural, domain.CaseInstrumental))
}

func TestLookup_ReturnsCopies(t *testing.T) {
	t.Parallel()

	first, _ := Lookup("мать")
	first.Forms.Singular[domain.CaseGenitive] = "broken"
	first.Translation = "changed"

	second, _ := Lookup("мать")
	assert.Equal(t, "матери", second.Form(domain.NumberSingular, domain.CaseGenitive))
	assert.Equal(t, "mother", second.Translation)
	assert.NotSame(t, first, second)
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	d, ok := Lookup("стол")
	assert.False(t, ok)
	assert.Nil(t, d)
	assert.False(t, Has("стол"))
	assert.True(t, Has("путь"))
	assert.False(t, Has("Путь"))
}

func TestWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"время", "дочь", "знамя", "имя", "мать", "путь", "ребёнок", "человек"}, Words())
}
