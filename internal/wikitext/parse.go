package wikitext

import (
	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/rules"
)

// Parser turns a page's wikitext into a Declension. Pages that only carry a
// {{ru-noun-table}} template get their singular paradigm from the rule
// generator, since the template itself is expanded server-side.
type Parser struct {
	rules *rules.Generator
}

// NewParser creates a Parser backed by gen.
func NewParser(gen *rules.Generator) *Parser {
	return &Parser{rules: gen}
}

// Parse builds a Declension for word from wt. All twelve slots start as the
// bare word and are overwritten by whatever the page provides. Caller
// metadata wins over values guessed from the page.
func (p *Parser) Parse(word, wt string, meta domain.Metadata) *domain.Declension {
	section := RussianSection(wt)

	d := domain.NewDeclension(word)
	d.Fill(word)
	d.Origin = domain.OriginEnWiktionary

	d.Gender = meta.Gender
	if !d.Gender.IsValid() {
		d.Gender = Gender(section)
	}
	d.Animacy = meta.Animacy
	if !d.Animacy.IsValid() {
		d.Animacy = Animacy(section)
	}
	d.Translation = meta.Translation
	if d.Translation == "" {
		d.Translation = Translation(section)
	}
	d.Transliteration = Transliteration(section)
	if d.Transliteration == "" {
		d.Transliteration = meta.Transliteration
	}

	if _, ok := NounTableStem(section); ok {
		if d.Gender.IsValid() {
			p.rules.Apply(d)
		}
		return d
	}

	found := CaseForms(section)
	for c, v := range found.Singular {
		d.SetForm(domain.NumberSingular, c, v)
	}
	for c, v := range found.Plural {
		d.SetForm(domain.NumberPlural, c, v)
	}
	return d
}
