package pix

import "fmt"

// Offset is a (row, column) position or translation on the shared pixel
// grid. Y grows upward from the baseline.
type Offset struct {
	Y, X int
}

// Add returns the component-wise sum.
func (o Offset) Add(p Offset) Offset {
	return Offset{Y: o.Y + p.Y, X: o.X + p.X}
}

// Sub returns the component-wise difference.
func (o Offset) Sub(p Offset) Offset {
	return Offset{Y: o.Y - p.Y, X: o.X - p.X}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Y, o.X)
}

// Glyph is one glyph record of a bitmap font: a cropped pixel matrix, its
// position on the shared grid, and an advance width in pixels. Code is
// absent for unencoded helper glyphs such as '.notdef'.
type Glyph struct {
	Name    string
	Code    Option[rune]
	Bitmap  *Bitmap
	Offset  Offset
	Advance int
}

// HasCode reports whether the glyph is encoded as the given character code.
func (g *Glyph) HasCode(c rune) bool {
	code, ok := g.Code.Unwrap()
	return ok && code == c
}

// CodeString formats the glyph's character code as 'U+xxxx', or the glyph
// name if the glyph is unencoded.
func (g *Glyph) CodeString() string {
	if code, ok := g.Code.Unwrap(); ok {
		return fmt.Sprintf("U+%04x", code)
	}
	return g.Name
}
