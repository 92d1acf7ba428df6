package pix

// Store is the glyph store of one font conversion: a mapping from glyph name
// to glyph record plus a reverse mapping from character code to name.
// Iteration order over names is insertion order, which makes every pass over
// the store deterministic. The store is populated once when the font is
// loaded and is read-only afterwards, except for synthetic combining-mark
// insertions (see Font.SynthesizeMarks).
type Store struct {
	glyphs map[string]*Glyph
	byCode map[rune]string
	names  []string
}

// NewStore creates an empty glyph store.
func NewStore() *Store {
	return &Store{
		glyphs: make(map[string]*Glyph),
		byCode: make(map[rune]string),
	}
}

// AllocateName turns a raw glyph name into a unique, sanitized store name:
// characters other than letters, digits and '.' become '_', a non-alphanumeric
// leading character gets an '_' prefix, and collisions with already allocated
// names are resolved by appending '_'. The allocation is injective: two
// different calls never return the same name.
func (s *Store) AllocateName(raw string) string {
	return s.dedupe(sanitizeName(raw))
}

// AllocateFixedName reserves a name verbatim, only resolving collisions.
// '.notdef' is exempt from sanitation.
func (s *Store) AllocateFixedName(name string) string {
	return s.dedupe(name)
}

func (s *Store) dedupe(name string) string {
	for {
		if _, taken := s.glyphs[name]; !taken {
			return name
		}
		name += "_"
	}
}

func sanitizeName(raw string) string {
	if raw == "" {
		return "_"
	}
	rs := []rune(raw)
	if !isAlnum(rs[0]) {
		rs = append([]rune{'_'}, rs...)
	}
	for i, r := range rs {
		if !isAlnum(r) && r != '.' {
			rs[i] = '_'
		}
	}
	return string(rs)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Add inserts a glyph under its (already allocated) name. Glyphs with a
// character code are additionally indexed by code; the first glyph wins if
// a code appears twice.
func (s *Store) Add(g *Glyph) {
	if _, taken := s.glyphs[g.Name]; taken {
		panic("pix: duplicate glyph name " + g.Name)
	}
	s.glyphs[g.Name] = g
	s.names = append(s.names, g.Name)
	if code, ok := g.Code.Unwrap(); ok {
		if _, taken := s.byCode[code]; !taken {
			s.byCode[code] = g.Name
		}
	}
}

// Glyph returns the glyph with the given name.
func (s *Store) Glyph(name string) (*Glyph, bool) {
	g, ok := s.glyphs[name]
	return g, ok
}

// ByCode returns the glyph encoded as the given character code.
func (s *Store) ByCode(code rune) (*Glyph, bool) {
	name, ok := s.byCode[code]
	if !ok {
		return nil, false
	}
	return s.glyphs[name], true
}

// NameOf returns the store name assigned to a character code.
func (s *Store) NameOf(code rune) (string, bool) {
	name, ok := s.byCode[code]
	return name, ok
}

// Has reports whether a glyph exists for the given character code.
func (s *Store) Has(code rune) bool {
	_, ok := s.byCode[code]
	return ok
}

// Names returns all glyph names in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Store) Names() []string {
	return s.names
}

// Len returns the number of stored glyphs.
func (s *Store) Len() int {
	return len(s.names)
}
