// Package irregular holds hand-curated declensions for nouns that suffix
// rules cannot produce: heteroclitic -мя nouns, suppletive plurals and the
// like. Entries are immutable; lookups return copies.
package irregular

import (
	"net/url"
	"sort"

	"github.com/heartmarshall/padezh/internal/domain"
)

const sourceBase = "https://ru.wiktionary.org/wiki/"

type entry struct {
	gender          domain.Gender
	animacy         domain.Animacy
	singular        [6]string
	plural          [6]string
	translation     string
	transliteration string
	note            string
}

var entries = map[string]entry{
	"время": {
		gender:          domain.GenderNeuter,
		animacy:         domain.AnimacyInanimate,
		singular:        [6]string{"время", "времени", "времени", "время", "временем", "времени"},
		plural:          [6]string{"времена", "времён", "временам", "времена", "временами", "временах"},
		translation:     "time",
		transliteration: "vremya",
		note:            "heteroclitic -мя noun with -ен- stem",
	},
	"дочь": {
		gender:          domain.GenderFeminine,
		animacy:         domain.AnimacyAnimate,
		singular:        [6]string{"дочь", "дочери", "дочери", "дочь", "дочерью", "дочери"},
		plural:          [6]string{"дочери", "дочерей", "дочерям", "дочерей", "дочерьми", "дочерях"},
		translation:     "daughter",
		transliteration: "doch'",
		note:            "stem extension -ер- in oblique cases",
	},
	"мать": {
		gender:          domain.GenderFeminine,
		animacy:         domain.AnimacyAnimate,
		singular:        [6]string{"мать", "матери", "матери", "мать", "матерью", "матери"},
		plural:          [6]string{"матери", "матерей", "матерям", "матерей", "матерями", "матерях"},
		translation:     "mother",
		transliteration: "mat'",
		note:            "stem extension -ер- in oblique cases",
	},
	"путь": {
		gender:          domain.GenderMasculine,
		animacy:         domain.AnimacyInanimate,
		singular:        [6]string{"путь", "пути", "пути", "путь", "путём", "пути"},
		plural:          [6]string{"пути", "путей", "путям", "пути", "путями", "путях"},
		translation:     "way/path",
		transliteration: "put'",
		note:            "masculine noun with mixed feminine endings",
	},
	"имя": {
		gender:          domain.GenderNeuter,
		animacy:         domain.AnimacyInanimate,
		singular:        [6]string{"имя", "имени", "имени", "имя", "именем", "имени"},
		plural:          [6]string{"имена", "имён", "именам", "имена", "именами", "именах"},
		translation:     "name",
		transliteration: "imya",
		note:            "heteroclitic -мя noun with -ен- stem",
	},
	"знамя": {
		gender:          domain.GenderNeuter,
		animacy:         domain.AnimacyInanimate,
		singular:        [6]string{"знамя", "знамени", "знамени", "знамя", "знаменем", "знамени"},
		plural:          [6]string{"знамёна", "знамён", "знамёнам", "знамёна", "знамёнами", "знамёнах"},
		translation:     "banner/flag",
		transliteration: "znamya",
		note:            "heteroclitic -мя noun, ё in plural",
	},
	"человек": {
		gender:          domain.GenderMasculine,
		animacy:         domain.AnimacyAnimate,
		singular:        [6]string{"человек", "человека", "человеку", "человека", "человеком", "человеке"},
		plural:          [6]string{"люди", "людей", "людям", "людей", "людьми", "людях"},
		translation:     "person",
		transliteration: "chelovek",
		note:            "suppletive plural люди",
	},
	"ребёнок": {
		gender:          domain.GenderMasculine,
		animacy:         domain.AnimacyAnimate,
		singular:        [6]string{"ребёнок", "ребёнка", "ребёнку", "ребёнка", "ребёнком", "ребёнке"},
		plural:          [6]string{"дети", "детей", "детям", "детей", "детьми", "детях"},
		translation:     "child",
		transliteration: "rebyonok",
		note:            "suppletive plural дети",
	},
}

// Has reports whether word has a curated entry. The lookup is exact.
func Has(word string) bool {
	_, ok := entries[word]
	return ok
}

// Lookup returns a fresh copy of the curated declension for word.
func Lookup(word string) (*domain.Declension, bool) {
	e, ok := entries[word]
	if !ok {
		return nil, false
	}

	d := domain.NewDeclension(word)
	for i, c := range domain.AllCases {
		d.Forms.Singular[c] = e.singular[i]
		d.Forms.Plural[c] = e.plural[i]
	}
	d.Gender = e.gender
	d.Animacy = e.animacy
	d.Translation = e.translation
	d.Transliteration = e.transliteration
	d.SourceURL = sourceBase + url.PathEscape(word)
	d.Origin = domain.OriginIrregular
	d.FromPrimarySource = true
	return d, true
}

// Note returns the linguistic note attached to word's entry.
func Note(word string) string {
	return entries[word].note
}

// Words returns all curated words in sorted order.
func Words() []string {
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
