package ufo

import (
	"strings"
	"testing"

	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/internal/testfont"
	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func featureTestStore() *pix.Store {
	return testfont.Store(
		testfont.Glyph("A", 'A', 0, 0, "#"),
		testfont.Glyph("a", 'a', 0, 0, "#"),
		testfont.Glyph("uni0301", 0x0301, 4, 1, "#"),
		testfont.Glyph("uni0327", 0x0327, -2, 1, "#"),
	)
}

func TestFeatureTextClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := featureTestStore()
	fea := FeatureText(store, compose.NewRegistry(), 256, 256)
	if !strings.Contains(fea, "languagesystem DFLT dflt;") {
		t.Error("expected the default language system")
	}
	if !strings.Contains(fea, "languagesystem latn dflt;") {
		t.Error("expected latn, the font has 'A'")
	}
	if strings.Contains(fea, "grek") || strings.Contains(fea, "cyrl") {
		t.Error("expected no grek/cyrl, the font has no Greek or Cyrillic")
	}
	if !strings.Contains(fea, "@allmarks = [uni0301 uni0327];") {
		t.Errorf("unexpected @allmarks in:\n%s", fea)
	}
	if !strings.Contains(fea, "@topmarks = [uni0301];") {
		t.Errorf("unexpected @topmarks in:\n%s", fea)
	}
	if !strings.Contains(fea, "GlyphClassDef , @allmarks, , ;") {
		t.Error("expected a GDEF glyph class definition")
	}
	if strings.Contains(fea, "lookup marklookup") {
		t.Error("expected no mark lookup without registered anchors")
	}
}

func TestFeatureTextMarkPositioning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := featureTestStore()
	reg := compose.NewRegistry()
	reg.PutMarkAnchor("uni0301", "top.shifted", pix.Offset{Y: 4, X: 1})
	reg.RegisterBase("a", "top.shifted", pix.Offset{Y: 4, X: 1})
	reg.RegisterBase("A", "top.shifted", pix.Offset{Y: 4, X: 1})

	fea := FeatureText(store, reg, 256, 256)
	if !strings.Contains(fea, "markClass [uni0301] <anchor 256 1024> @top.shifted;") {
		t.Errorf("unexpected mark class in:\n%s", fea)
	}
	if !strings.Contains(fea, "pos base [a A] <anchor 256 1024> mark @top.shifted;") {
		t.Errorf("unexpected base positioning in:\n%s", fea)
	}
	if !strings.Contains(fea, "feature mark {\n    lookup marklookup;\n} mark;") {
		t.Error("expected the mark feature block")
	}
}

func TestFeatureTextAnchorScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := featureTestStore()
	reg := compose.NewRegistry()
	reg.PutMarkAnchor("uni0301", "top.shifted", pix.Offset{Y: 4, X: 3})
	reg.RegisterBase("a", "top.shifted", pix.Offset{Y: 4, X: 3})

	// narrow horizontal spacing scales x but not y
	fea := FeatureText(store, reg, 256, 128)
	if !strings.Contains(fea, "<anchor 384 1024>") {
		t.Errorf("expected anchors scaled to <anchor 384 1024> in:\n%s", fea)
	}
}
