/*
Package bdf reads Glyph Bitmap Distribution Format (BDF) fonts.

BDF is a line-oriented text format for bitmap fonts, described in the Adobe
"Glyph Bitmap Distribution Format Specification 2.2":
https://adobe-type-tools.github.io/font-tech-notes/pdfs/5005.BDF_Spec.pdf

The package exposes the container content as-is; interpreting glyph bitmaps
(cropping, naming, decomposition) is the business of sister packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bdf

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}

// Font is a decoded BDF font: global metadata, properties and glyphs in
// file order.
type Font struct {
	Name       string   // FONT line (XLFD name)
	PointSize  int      // first SIZE argument
	Comments   []string // COMMENT lines, in order
	Properties map[string]string
	Glyphs     []Glyph
}

// Glyph is one raw BDF glyph. Rows are stored bottom-up, matching the
// grid convention of package pix; within a row, the leftmost pixel sits in
// the most significant bit of the first byte.
type Glyph struct {
	Name    string
	Code    rune // ENCODING value; -1 for unencoded glyphs
	W, H    int  // BBX width and height
	OffX    int  // BBX x displacement of the lower-left corner
	OffY    int  // BBX y displacement of the lower-left corner
	Advance int  // DWIDTH x component
	rows    [][]byte
}

// At reports whether the glyph pixel at row y (bottom-up), column x is on.
func (g *Glyph) At(y, x int) bool {
	row := g.rows[y]
	return row[x/8]>>(7-uint(x%8))&1 != 0
}

// IntProperty returns a property interpreted as an integer, or def when the
// property is absent or not numeric.
func (f *Font) IntProperty(key string, def int) int {
	raw, ok := f.Properties[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// StrProperty returns a property as a string, or def when absent.
func (f *Font) StrProperty(key string, def string) string {
	if raw, ok := f.Properties[key]; ok {
		return raw
	}
	return def
}
