// Package testfont builds small in-memory fonts for tests, from bitmaps
// given as ASCII art (topmost row first, '#' = set pixel).
package testfont

import (
	"github.com/npillmayer/pixeltype/pix"
)

// Glyph builds a glyph record. code < 0 creates an unencoded glyph.
// The advance defaults to the bitmap width plus one.
func Glyph(name string, code rune, offY, offX int, rows ...string) *pix.Glyph {
	bitmap := pix.ParseBitmap(rows...)
	var c pix.Option[rune]
	if code >= 0 {
		c = pix.Some(code)
	}
	return &pix.Glyph{
		Name:    name,
		Code:    c,
		Bitmap:  bitmap,
		Offset:  pix.Offset{Y: offY, X: offX},
		Advance: bitmap.W + 1,
	}
}

// Store builds a glyph store holding the given glyphs, in order.
func Store(glyphs ...*pix.Glyph) *pix.Store {
	store := pix.NewStore()
	for _, g := range glyphs {
		store.Add(g)
	}
	return store
}

// Font wraps a store into a font with simple line metrics.
func Font(store *pix.Store, ascent, descent int) *pix.Font {
	return &pix.Font{
		Store: store,
		Metrics: pix.Metrics{
			Ascent:    ascent,
			Descent:   descent,
			CapHeight: ascent,
			XHeight:   ascent / 2,
		},
	}
}
