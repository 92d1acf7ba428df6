package ufo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/internal/testfont"
	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testInfo() Info {
	info := Info{
		FamilyName:  "Tiny",
		StyleName:   "Regular",
		Version:     "1.0",
		UnitsPerEm:  2048,
		GlyphScaleX: 1,
		GlyphScaleY: 1,
	}
	info.Metrics = pix.Metrics{Ascent: 7, Descent: -1, CapHeight: 6, XHeight: 4}
	info.BBoxMin = pix.Offset{Y: -1, X: 0}
	info.BBoxMax = pix.Offset{Y: 7, X: 5}
	return info
}

func TestWriteUFOPackage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "Tiny-Regular.ufo")
	wr := NewWriter(testInfo(), DefaultLocation())
	err := wr.WriteUFO(dir, ufoTestSources(t), "languagesystem DFLT dflt;\n")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"metainfo.plist", "fontinfo.plist", "layercontents.plist",
		"features.fea", "glyphs/contents.plist", "glyphs/__.glif",
		"glyphs/a.glif", "glyphs/aacute.glif",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s in the UFO package: %v", name, err)
		}
	}
}

func ufoTestSources(t *testing.T) []GlyphSource {
	t.Helper()
	a := testfont.Glyph("a", 'a', 0, 0,
		"###",
		"#.#",
		"###",
	)
	mark := testfont.Glyph("uni0301", 0x0301, 4, 1, "#")
	aacute := testfont.Glyph("aacute", 0xe1, 0, 0,
		".#.",
		"...",
		"###",
		"#.#",
		"###",
	)
	return []GlyphSource{
		{Glyph: a, Anchors: []compose.Anchor{{Name: "top.shifted", Pos: pix.Offset{Y: 4, X: 1}}}},
		{Glyph: mark},
		{Glyph: aacute, Components: []ComponentRef{
			{Base: "uni0301", Delta: pix.Offset{}},
			{Base: "a", Delta: pix.Offset{}},
		}},
	}
}

func TestWriteUFOGlifContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "Tiny-Regular.ufo")
	wr := NewWriter(testInfo(), DefaultLocation())
	if err := wr.WriteUFO(dir, ufoTestSources(t), ""); err != nil {
		t.Fatal(err)
	}
	// the standalone glyph references the element per pixel
	data, err := os.ReadFile(filepath.Join(dir, "glyphs", "a.glif"))
	if err != nil {
		t.Fatal(err)
	}
	glif := string(data)
	if !strings.Contains(glif, `<unicode hex="0061"/>`) {
		t.Error("expected the unicode element")
	}
	if n := strings.Count(glif, `<component base="_"`); n != 8 {
		t.Errorf("expected 8 element references, got %d", n)
	}
	if !strings.Contains(glif, `<anchor x="256" y="1024" name="top.shifted"/>`) {
		t.Errorf("expected the anchor at (256,1024) in:\n%s", glif)
	}
	// the composed glyph references its components
	data, err = os.ReadFile(filepath.Join(dir, "glyphs", "aacute.glif"))
	if err != nil {
		t.Fatal(err)
	}
	glif = string(data)
	if !strings.Contains(glif, `<component base="a"/>`) ||
		!strings.Contains(glif, `<component base="uni0301"/>`) {
		t.Errorf("expected bare component references in:\n%s", glif)
	}
	if strings.Contains(glif, `<component base="_"`) {
		t.Error("expected no element references in a composed glyph")
	}
}

func TestWriteUFODoubleStrike(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	info := testInfo()
	info.DoubleStrike = true
	dir := filepath.Join(t.TempDir(), "Tiny-Regular.ufo")
	wr := NewWriter(info, DefaultLocation())
	if err := wr.WriteUFO(dir, ufoTestSources(t), ""); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "glyphs", "a.glif"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), `<component base="_"`); n != 16 {
		t.Errorf("expected 16 element references with double strike, got %d", n)
	}
}

func TestWriteUFOFontInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "Tiny-Regular.ufo")
	wr := NewWriter(testInfo(), DefaultLocation())
	if err := wr.WriteUFO(dir, nil, ""); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "fontinfo.plist"))
	if err != nil {
		t.Fatal(err)
	}
	plist := string(data)
	// 2048 units per em over 8 pixel rows = 256 units per row;
	// line box 1792/-256, em box centered on it
	for key, value := range map[string]string{
		"unitsPerEm":            "2048",
		"openTypeHheaAscender":  "1792",
		"openTypeHheaDescender": "-256",
		"descender":             "-256",
		"ascender":              "1792",
		"capHeight":             "1536",
		"xHeight":               "1024",
		"openTypeOS2WinAscent":  "1792",
		"openTypeOS2WinDescent": "256",
	} {
		want := "<key>" + key + "</key>\n    <integer>" + value + "</integer>"
		if !strings.Contains(plist, want) {
			t.Errorf("expected %s = %s in fontinfo.plist:\n%s", key, value, plist)
		}
	}
	if !strings.Contains(plist, "<key>familyName</key>\n    <string>Tiny</string>") {
		t.Error("expected the family name in fontinfo.plist")
	}
}

func TestWriteDesignspace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := t.TempDir()
	err := WriteDesignspace(dir, testInfo(), []string{"ESIZ"}, []Instance{
		{Name: "Light", Location: Location{"ESIZ": 0.5}},
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Tiny-Regular.designspace"))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, `<axis tag="ESIZ" name="Element Size" minimum="10" maximum="100" default="100"/>`) {
		t.Errorf("unexpected axis element in:\n%s", doc)
	}
	if !strings.Contains(doc, `<source filename="Tiny-ESIZminRegular.ufo"`) ||
		!strings.Contains(doc, `<source filename="Tiny-ESIZmaxRegular.ufo"`) {
		t.Errorf("expected min/max sources in:\n%s", doc)
	}
	if !strings.Contains(doc, `stylename="Light Regular"`) {
		t.Errorf("expected the instance style name in:\n%s", doc)
	}
	if !strings.Contains(doc, `<dimension name="Element Size" xvalue="50"/>`) {
		t.Errorf("expected the instance location in:\n%s", doc)
	}
	config, err := os.ReadFile(filepath.Join(dir, "Tiny-Regular-config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := "sources:\n  - Tiny-Regular.designspace\naxisOrder:\n  - ESIZ\n"
	if string(config) != want {
		t.Errorf("unexpected config.yaml:\n%s", config)
	}
}
