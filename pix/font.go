package pix

import (
	"fmt"

	"github.com/npillmayer/pixeltype/bdf"
)

// Metrics are font-wide vertical metrics in pixel units.
type Metrics struct {
	Ascent    int // baseline to top of line
	Descent   int // baseline to bottom of line, negative below baseline
	CapHeight int
	XHeight   int
}

// Font is a bitmap font prepared for conversion: the glyph store plus
// font-wide metrics and the union bounding box of all glyph bitmaps.
type Font struct {
	Store    *Store
	Metrics  Metrics
	BBoxMin  Offset
	BBoxMax  Offset
	Source   *bdf.Font // the underlying container, for property access
	haveBBox bool
}

// LoadOptions control how a BDF font is turned into a glyph store.
type LoadOptions struct {
	Subset      Subset       // character codes to convert; zero value = all
	NotdefCode  Option[rune] // code of the glyph to rename '.notdef'
	Substitutes map[rune]rune // combining-mark code → modifier-letter code
}

// FromBDF builds a Font from a parsed BDF container: bitmaps are cropped to
// their tight bounding box, glyph names are sanitized and made unique, and
// the reverse code index is set up. For every combining-mark code in
// opts.Substitutes that has no native glyph but whose modifier-letter
// substitute is present, a synthetic glyph named 'uniXXXX' is inserted,
// sharing the modifier's bitmap, offset and advance.
func FromBDF(src *bdf.Font, opts LoadOptions) (*Font, error) {
	if src == nil {
		return nil, fmt.Errorf("no BDF font given")
	}
	font := &Font{
		Store:  NewStore(),
		Source: src,
	}
	font.Metrics.CapHeight = src.PointSize
	font.Metrics.XHeight = src.PointSize
	for i := range src.Glyphs {
		raw := &src.Glyphs[i]
		var name string
		var code Option[rune]
		if notdef, ok := opts.NotdefCode.Unwrap(); ok && raw.Code == notdef {
			name = font.Store.AllocateFixedName(".notdef")
		} else {
			if raw.Code >= 0 && !opts.Subset.Match(raw.Code) {
				continue
			}
			name = font.Store.AllocateName(raw.Name)
			if raw.Code >= 0 {
				code = Some(raw.Code)
			}
		}
		bitmap, offset := cropRaw(raw)
		glyph := &Glyph{
			Name:    name,
			Code:    code,
			Bitmap:  bitmap,
			Offset:  offset,
			Advance: raw.Advance,
		}
		font.growBBox(glyph)
		switch raw.Code {
		case 'A':
			font.Metrics.CapHeight = bitmap.H
		case 'x':
			font.Metrics.XHeight = bitmap.H
		}
		font.Store.Add(glyph)
	}
	font.SynthesizeMarks(opts.Substitutes, opts.Subset)
	font.Metrics.Ascent = src.IntProperty("FONT_ASCENT", src.PointSize)
	font.Metrics.Descent = -src.IntProperty("FONT_DESCENT", 0)
	font.Metrics.CapHeight = src.IntProperty("CAP_HEIGHT", font.Metrics.CapHeight)
	font.Metrics.XHeight = src.IntProperty("X_HEIGHT", font.Metrics.XHeight)
	tracer().Infof("glyph store holds %d glyphs", font.Store.Len())
	return font, nil
}

// cropRaw converts a raw BDF glyph to a cropped bitmap plus its grid offset.
func cropRaw(raw *bdf.Glyph) (*Bitmap, Offset) {
	full := NewBitmap(max(raw.H, 1), max(raw.W, 1))
	for y := 0; y < raw.H; y++ {
		for x := 0; x < raw.W; x++ {
			if raw.At(y, x) {
				full.Set(y, x)
			}
		}
	}
	cropped, dy, dx := full.Crop()
	return cropped, Offset{Y: raw.OffY + dy, X: raw.OffX + dx}
}

// SynthesizeMarks inserts synthetic combining-mark glyphs: for each
// (combining, modifier) pair where the store covers the modifier but not the
// combining code, a copy of the modifier's record is added under the name
// 'uniXXXX' encoded as the combining code. Codes outside the subset are
// skipped. Iteration is ordered by combining code to keep store order stable.
func (f *Font) SynthesizeMarks(substitutes map[rune]rune, subset Subset) {
	for _, combining := range sortedCodes(substitutes) {
		modifier := substitutes[combining]
		if f.Store.Has(combining) || !f.Store.Has(modifier) {
			continue
		}
		if !subset.Match(combining) {
			continue
		}
		src, _ := f.Store.ByCode(modifier)
		name := f.Store.AllocateName(fmt.Sprintf("uni%04x", combining))
		f.Store.Add(&Glyph{
			Name:    name,
			Code:    Some(combining),
			Bitmap:  src.Bitmap,
			Offset:  src.Offset,
			Advance: src.Advance,
		})
		tracer().Debugf("synthesized combining glyph %s from %s", name, src.Name)
	}
}

func sortedCodes(m map[rune]rune) []rune {
	codes := make([]rune, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}

func (f *Font) growBBox(g *Glyph) {
	min := g.Offset
	max := Offset{Y: g.Offset.Y + g.Bitmap.H, X: g.Offset.X + g.Bitmap.W}
	if !f.haveBBox {
		f.BBoxMin, f.BBoxMax = min, max
		f.haveBBox = true
		return
	}
	if min.Y < f.BBoxMin.Y {
		f.BBoxMin.Y = min.Y
	}
	if min.X < f.BBoxMin.X {
		f.BBoxMin.X = min.X
	}
	if max.Y > f.BBoxMax.Y {
		f.BBoxMax.Y = max.Y
	}
	if max.X > f.BBoxMax.X {
		f.BBoxMax.X = max.X
	}
}
