package pixeltype

import (
	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/pix"
)

// Outcome is the conversion result for one stored glyph: either a list of
// component placements (the glyph is expressed as references to other
// glyphs), or no placements, meaning the glyph keeps its standalone bitmap.
type Outcome struct {
	Glyph         *pix.Glyph
	Decomposition []rune
	Placements    []compose.Placement
	Status        compose.Status
	Attempted     bool // false when no decomposition data existed
}

// Composed reports whether the glyph is expressed through components.
func (o Outcome) Composed() bool {
	return o.Attempted && o.Status == compose.Tiled && len(o.Placements) > 0
}

// Conversion is the result of running the composition engine over a font:
// one outcome per stored glyph, in store order, plus the anchor registry and
// the accumulated issues.
type Conversion struct {
	Font     *pix.Font
	Outcomes []Outcome
	Registry *compose.Registry
	Issues   *compose.IssueLog
}

// Compose runs the decomposition engine over every glyph of a font, in store
// order: resolve the decomposition, search for a tiling, and on success with
// exactly two components synthesize anchors. Glyphs reporting missing or
// mismatch keep their standalone bitmap and leave a note or warning in the
// issue log; uncomposable glyphs are kept silently — composing a
// modifier-letter glyph through its own combining mark is an expected
// structural dead end, not a data problem.
func Compose(font *pix.Font) *Conversion {
	conv := &Conversion{
		Font:     font,
		Registry: compose.NewRegistry(),
		Issues:   compose.NewIssueLog(),
	}
	tiler := compose.NewTiler(font.Store)
	synth := compose.NewSynthesizer(font.Store, conv.Registry, conv.Issues)
	for _, name := range font.Store.Names() {
		glyph, _ := font.Store.Glyph(name)
		conv.Outcomes = append(conv.Outcomes, composeGlyph(glyph, tiler, synth, conv.Issues))
	}
	return conv
}

func composeGlyph(glyph *pix.Glyph, tiler *compose.Tiler, synth *compose.Synthesizer, issues *compose.IssueLog) Outcome {
	out := Outcome{Glyph: glyph}
	code, encoded := glyph.Code.Unwrap()
	if !encoded {
		return out
	}
	decomposition := compose.Decompose(code)
	if len(decomposition) == 0 {
		return out
	}
	out.Attempted = true
	out.Decomposition = decomposition
	placements, status := tiler.Tile(glyph, decomposition)
	out.Status = status
	switch status {
	case compose.Tiled:
		out.Placements = placements
		tracer().Infof("U+%04x composed with [%s]", code, compose.FormatCodes(decomposition))
		synth.AddAnchors(glyph, placements)
	case compose.Missing:
		issues.Notef(glyph.Name, code, "tiling",
			"could be composed from [%s]", compose.FormatCodes(decomposition))
	case compose.Mismatch:
		issues.Warnf(glyph.Name, code, "tiling",
			"cannot be composed from [%s], storing precomposed glyph",
			compose.FormatCodes(decomposition))
	case compose.Uncomposable:
		// expected for modifier-letter glyphs; keep the bitmap, say nothing
	}
	return out
}
