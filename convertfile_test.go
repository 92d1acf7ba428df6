package pixeltype

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pixeltype/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const tinyBDF = `STARTFONT 2.1
FONT -misc-tiny-medium-r-normal--4-40-75-75-c-40-iso10646-1
SIZE 4 75 75
FONTBOUNDINGBOX 4 4 0 -1
STARTPROPERTIES 4
FONT_ASCENT 3
FONT_DESCENT 1
FAMILY_NAME "Tiny"
WEIGHT_NAME "Medium"
ENDPROPERTIES
CHARS 2
STARTCHAR space
ENCODING 32
DWIDTH 3 0
BBX 1 1 0 0
BITMAP
00
ENDCHAR
STARTCHAR A
ENCODING 65
DWIDTH 4 0
BBX 3 3 0 0
BITMAP
40
A0
E0
ENDCHAR
ENDFONT
`

func TestConvertFileStatic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := t.TempDir()
	input := filepath.Join(dir, "tiny.bdf")
	if err := os.WriteFile(input, []byte(tinyBDF), 0o644); err != nil {
		t.Fatal(err)
	}
	outdir := filepath.Join(dir, "masters")
	conv, err := ConvertFile(input, outdir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if conv.Font.Store.Len() != 2 {
		t.Errorf("expected 2 glyphs in the store, got %d", conv.Font.Store.Len())
	}
	for _, name := range []string{
		"Tiny-Medium.ufo/metainfo.plist",
		"Tiny-Medium.ufo/fontinfo.plist",
		"Tiny-Medium.ufo/glyphs/A_.glif",
		"Tiny-Medium.designspace",
		"Tiny-Medium-config.yaml",
	} {
		if _, err := os.Stat(filepath.Join(outdir, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestConvertFileVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	dir := t.TempDir()
	input := filepath.Join(dir, "tiny.bdf")
	if err := os.WriteFile(input, []byte(tinyBDF), 0o644); err != nil {
		t.Fatal(err)
	}
	outdir := filepath.Join(dir, "masters")
	_, err := ConvertFile(input, outdir, Options{
		VariableAxes: []string{"ROND"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"Tiny-RONDminMedium.ufo",
		"Tiny-RONDmaxMedium.ufo",
	} {
		if _, err := os.Stat(filepath.Join(outdir, name)); err != nil {
			t.Errorf("expected master %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(outdir, "Tiny-Medium.designspace"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `tag="ROND"`) {
		t.Error("expected the ROND axis in the designspace")
	}
}

func TestConvertFileInstancesNeedAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	_, err := ConvertFile("nosuch.bdf", t.TempDir(), Options{
		Instances: []ufo.Instance{{Name: "Light"}},
	})
	if err == nil {
		t.Error("expected an error for instances without variable axes")
	}
}
