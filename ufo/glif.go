package ufo

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/pix"
	"golang.org/x/image/math/fixed"
)

// ComponentRef is one component reference of a composed glyph: the name of
// the referenced glyph and its displacement in pixel-grid units, relative to
// the referenced glyph's own offset.
type ComponentRef struct {
	Base  string
	Delta pix.Offset
}

// GlyphSource is everything the writer needs to serialize one glyph: the
// glyph itself, its component references if it is composed (no components
// mean the standalone bitmap is rendered), and its anchors.
type GlyphSource struct {
	Glyph      *pix.Glyph
	Components []ComponentRef
	Anchors    []compose.Anchor
}

// geometry is the per-master scaling state: font units per pixel row and
// column, the global glyph offset, strike count, and the jitter source for
// the EJIT axis.
type geometry struct {
	UnitsPerElementY int
	UnitsPerElementX float64
	GlyphOffsetX     float64
	Strikes          int
	Jitter           func() float64
}

// glifFileName converts a glyph name into its .glif file name, following
// the UFO user-name-to-file-name conventions: uppercase letters get an
// underscore appended, a leading dot becomes an underscore.
func glifFileName(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i == 0 && r == '.' {
			sb.WriteByte('_')
			continue
		}
		sb.WriteRune(r)
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('_')
		}
	}
	sb.WriteString(".glif")
	return sb.String()
}

func formatUnits(v fixed.Int26_6) string {
	return strconv.FormatFloat(Float(v), 'f', -1, 64)
}

// writeGlif serializes one glyph as a GLIF version 2 document. Composed
// glyphs become component references with integer pixel-grid offsets;
// standalone glyphs become one reference to the element glyph '_' per set
// pixel (twice per pixel in double-strike mode, the second strike half a
// pixel below).
func writeGlif(w io.Writer, src GlyphSource, geom geometry) error {
	glyph := src.Glyph
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<glyph name=%q format=\"2\">\n", glyph.Name); err != nil {
		return err
	}
	advance := int(float64(glyph.Advance) * geom.UnitsPerElementX)
	if _, err := fmt.Fprintf(w, "  <advance width=\"%d\"/>\n", advance); err != nil {
		return err
	}
	if code, ok := glyph.Code.Unwrap(); ok {
		if _, err := fmt.Fprintf(w, "  <unicode hex=\"%04X\"/>\n", code); err != nil {
			return err
		}
	}
	for _, a := range src.Anchors {
		x := int(math.Floor((float64(a.Pos.X) + geom.GlyphOffsetX) * geom.UnitsPerElementX))
		y := a.Pos.Y * geom.UnitsPerElementY
		if _, err := fmt.Fprintf(w, "  <anchor x=\"%d\" y=\"%d\" name=%q/>\n", x, y, a.Name); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "  <outline>\n"); err != nil {
		return err
	}
	var err error
	if len(src.Components) > 0 {
		err = writeComponents(w, src.Components, geom)
	} else {
		err = writeBitmap(w, glyph, geom)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "  </outline>\n</glyph>\n")
	return err
}

func writeBitmap(w io.Writer, glyph *pix.Glyph, geom geometry) error {
	bm := glyph.Bitmap
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			if !bm.At(y, x) {
				continue
			}
			for z := 0; z < geom.Strikes; z++ {
				ufoY := (float64(glyph.Offset.Y+y)+0.5-0.5*float64(z))*
					float64(geom.UnitsPerElementY) + geom.Jitter()
				ufoX := (geom.GlyphOffsetX+float64(glyph.Offset.X+x)+0.5)*
					geom.UnitsPerElementX + geom.Jitter()
				_, err := fmt.Fprintf(w,
					"    <component base=\"_\" xOffset=\"%d\" yOffset=\"%d\"/>\n",
					int(math.Floor(ufoX)), int(math.Floor(ufoY)))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeComponents(w io.Writer, components []ComponentRef, geom geometry) error {
	for _, ref := range components {
		if ref.Delta == (pix.Offset{}) {
			if _, err := fmt.Fprintf(w, "    <component base=%q/>\n", ref.Base); err != nil {
				return err
			}
			continue
		}
		x := int(math.Floor(float64(ref.Delta.X) * geom.UnitsPerElementX))
		y := ref.Delta.Y * geom.UnitsPerElementY
		_, err := fmt.Fprintf(w, "    <component base=%q xOffset=\"%d\" yOffset=\"%d\"/>\n",
			ref.Base, x, y)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElementGlif serializes the shared pixel element glyph '_'.
func writeElementGlif(w io.Writer, points []Point) error {
	if _, err := io.WriteString(w,
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<glyph name=\"_\" format=\"2\">\n  <advance width=\"0\"/>\n  <outline>\n    <contour>\n"); err != nil {
		return err
	}
	for _, p := range points {
		var err error
		if p.Type == "offcurve" {
			_, err = fmt.Fprintf(w, "      <point x=\"%s\" y=\"%s\"/>\n",
				formatUnits(p.X), formatUnits(p.Y))
		} else {
			_, err = fmt.Fprintf(w, "      <point x=\"%s\" y=\"%s\" type=%q/>\n",
				formatUnits(p.X), formatUnits(p.Y), p.Type)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "    </contour>\n  </outline>\n</glyph>\n")
	return err
}
