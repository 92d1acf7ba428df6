package pix

import (
	"testing"

	"github.com/npillmayer/pixeltype/bdf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testBDF(glyphs ...bdf.Glyph) *bdf.Font {
	return &bdf.Font{
		Name:      "-misc-testface-medium-r-normal--8-80-75-75-c-80-iso10646-1",
		PointSize: 8,
		Properties: map[string]string{
			"FONT_ASCENT":  "7",
			"FONT_DESCENT": "1",
		},
		Glyphs: glyphs,
	}
}

func TestFromBDFCropsBitmaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	// 3x2 cell, only the left 2x2 corner carries pixels
	raw := bdf.NewGlyph("A", 'A', 3, 2, 1, 0, 4, [][]byte{
		{0xc0}, // ##.
		{0x80}, // #..
	})
	font, err := FromBDF(testBDF(raw), LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	glyph, ok := font.Store.Glyph("A")
	if !ok {
		t.Fatal("expected glyph 'A' in store")
	}
	if glyph.Bitmap.H != 2 || glyph.Bitmap.W != 2 {
		t.Errorf("expected cropped 2x2 bitmap, got %dx%d:\n%s",
			glyph.Bitmap.H, glyph.Bitmap.W, glyph.Bitmap)
	}
	if glyph.Offset != (Offset{Y: 0, X: 1}) {
		t.Errorf("expected offset (0,1), got %v", glyph.Offset)
	}
	if glyph.Advance != 4 {
		t.Errorf("expected advance 4, got %d", glyph.Advance)
	}
	if font.Metrics.Ascent != 7 || font.Metrics.Descent != -1 {
		t.Errorf("expected metrics 7/-1, got %d/%d",
			font.Metrics.Ascent, font.Metrics.Descent)
	}
}

func TestFromBDFNotdefRenaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	raw := bdf.NewGlyph("char0", 0, 2, 2, 0, 0, 3, [][]byte{
		{0xc0},
		{0xc0},
	})
	font, err := FromBDF(testBDF(raw), LoadOptions{NotdefCode: Some[rune](0)})
	if err != nil {
		t.Fatal(err)
	}
	glyph, ok := font.Store.Glyph(".notdef")
	if !ok {
		t.Fatal("expected glyph '.notdef' in store")
	}
	if glyph.Code.IsSome() {
		t.Error("expected '.notdef' to be unencoded")
	}
}

func TestFromBDFSubset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	a := bdf.NewGlyph("A", 'A', 1, 1, 0, 0, 2, [][]byte{{0x80}})
	b := bdf.NewGlyph("B", 'B', 1, 1, 0, 0, 2, [][]byte{{0x80}})
	subset, err := ParseSubset("0x41")
	if err != nil {
		t.Fatal(err)
	}
	font, err := FromBDF(testBDF(a, b), LoadOptions{Subset: subset})
	if err != nil {
		t.Fatal(err)
	}
	if !font.Store.Has('A') {
		t.Error("expected 'A' to survive the subset")
	}
	if font.Store.Has('B') {
		t.Error("expected 'B' to be filtered out")
	}
}

func TestSynthesizeMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	// modifier letter acute present, combining acute absent
	acute := bdf.NewGlyph("acute", 0x02ca, 2, 1, 0, 5, 2, [][]byte{{0x40}})
	font, err := FromBDF(testBDF(acute), LoadOptions{
		Substitutes: map[rune]rune{0x0301: 0x02ca},
	})
	if err != nil {
		t.Fatal(err)
	}
	mark, ok := font.Store.ByCode(0x0301)
	if !ok {
		t.Fatal("expected synthesized glyph for U+0301")
	}
	if mark.Name != "uni0301" {
		t.Errorf("expected name 'uni0301', got %q", mark.Name)
	}
	modifier, _ := font.Store.ByCode(0x02ca)
	if !mark.Bitmap.Equal(modifier.Bitmap) || mark.Offset != modifier.Offset {
		t.Error("expected synthesized mark to share the modifier's bitmap and offset")
	}
}
