package domain

// Placeholder is the sentinel stored in every case slot of a failed resolution.
const Placeholder = "-"

// placeholderDash is the typographic dash some sources use for an absent form.
const placeholderDash = "—"

// Declension is the canonical resolver output: twelve case slots plus
// descriptive and provenance metadata.
type Declension struct {
	Word              string  `json:"word"`
	Gender            Gender  `json:"gender"`
	Animacy           Animacy `json:"animacy"`
	Forms             Forms   `json:"declension"`
	Translation       string  `json:"translation"`
	Transliteration   string  `json:"transliteration"`
	SourceURL         string  `json:"sourceUrl"`
	Origin            Origin  `json:"origin"`
	IsFallback        bool    `json:"isFallback"`
	FromPrimarySource bool    `json:"fromPrimarySource"`
	Error             string  `json:"error,omitempty"`
}

// Forms holds the singular and plural case paradigms.
type Forms struct {
	Singular CaseForms `json:"singular"`
	Plural   CaseForms `json:"plural"`
}

// CaseForms maps each case to its inflected form.
type CaseForms map[Case]string

// Metadata is optional caller-supplied information about a noun.
// It only fills gaps in a resolved Declension and never overrides source data.
type Metadata struct {
	Gender          Gender
	Animacy         Animacy
	Translation     string
	Transliteration string
}

// WithDefaults returns m with every empty field taken from fallback.
func (m Metadata) WithDefaults(fallback Metadata) Metadata {
	if m.Gender == "" {
		m.Gender = fallback.Gender
	}
	if m.Animacy == "" {
		m.Animacy = fallback.Animacy
	}
	if m.Translation == "" {
		m.Translation = fallback.Translation
	}
	if m.Transliteration == "" {
		m.Transliteration = fallback.Transliteration
	}
	return m
}

// IsPresent reports whether a form carries data: non-empty and not a dash.
func IsPresent(form string) bool {
	return form != "" && form != Placeholder && form != placeholderDash
}

// NewDeclension returns a Declension for word with all twelve slots empty.
func NewDeclension(word string) *Declension {
	d := &Declension{
		Word: word,
		Forms: Forms{
			Singular: make(CaseForms, len(AllCases)),
			Plural:   make(CaseForms, len(AllCases)),
		},
	}
	d.Ensure()
	return d
}

// PlaceholderDeclension builds the explicit failure result: every slot is the
// placeholder dash, IsFallback is set and Error carries the marker.
func PlaceholderDeclension(word string, meta Metadata) *Declension {
	d := NewDeclension(word)
	d.Fill(Placeholder)
	d.Gender = meta.Gender
	d.Animacy = meta.Animacy
	d.Translation = meta.Translation
	d.Transliteration = meta.Transliteration
	d.Origin = OriginPlaceholder
	d.IsFallback = true
	d.Error = "declension data unavailable"
	return d
}

// Ensure guarantees that both numbers define all six case slots.
// Missing slots are created empty; existing values are untouched.
func (d *Declension) Ensure() {
	if d.Forms.Singular == nil {
		d.Forms.Singular = make(CaseForms, len(AllCases))
	}
	if d.Forms.Plural == nil {
		d.Forms.Plural = make(CaseForms, len(AllCases))
	}
	for _, c := range AllCases {
		if _, ok := d.Forms.Singular[c]; !ok {
			d.Forms.Singular[c] = ""
		}
		if _, ok := d.Forms.Plural[c]; !ok {
			d.Forms.Plural[c] = ""
		}
	}
}

// Fill sets every one of the twelve slots to value.
func (d *Declension) Fill(value string) {
	d.Ensure()
	for _, c := range AllCases {
		d.Forms.Singular[c] = value
		d.Forms.Plural[c] = value
	}
}

// Form returns the form for the given number and case.
func (d *Declension) Form(n Number, c Case) string {
	if n == NumberPlural {
		return d.Forms.Plural[c]
	}
	return d.Forms.Singular[c]
}

// SetForm stores a form for the given number and case.
func (d *Declension) SetForm(n Number, c Case, form string) {
	d.Ensure()
	if n == NumberPlural {
		d.Forms.Plural[c] = form
		return
	}
	d.Forms.Singular[c] = form
}

// PresentCount returns how many case slots of the given paradigm carry data.
func (f CaseForms) PresentCount() int {
	n := 0
	for _, c := range AllCases {
		if IsPresent(f[c]) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of d.
func (d *Declension) Clone() *Declension {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Forms = Forms{
		Singular: cloneForms(d.Forms.Singular),
		Plural:   cloneForms(d.Forms.Plural),
	}
	return &cp
}

// Enrich fills empty descriptive fields from meta. Values the source already
// provided are never overridden. Unknown animacy defaults to inanimate.
func (d *Declension) Enrich(meta Metadata) {
	if d.Gender == "" && meta.Gender.IsValid() {
		d.Gender = meta.Gender
	}
	if d.Animacy == "" {
		d.Animacy = meta.Animacy
	}
	if !d.Animacy.IsValid() {
		d.Animacy = AnimacyInanimate
	}
	if d.Translation == "" {
		d.Translation = meta.Translation
	}
	if d.Transliteration == "" {
		d.Transliteration = meta.Transliteration
	}
}

func cloneForms(f CaseForms) CaseForms {
	if f == nil {
		return nil
	}
	out := make(CaseForms, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
