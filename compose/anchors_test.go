package compose

import (
	"testing"

	"github.com/npillmayer/pixeltype/internal/testfont"
	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type AnchorTestEnviron struct {
	suite.Suite
	store *pix.Store
	reg   *Registry
	log   *IssueLog
	synth *Synthesizer
}

// listen for 'go test' command --> run test methods
func TestAnchorSynthesis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	suite.Run(t, new(AnchorTestEnviron))
}

// run before every test method: anchor caching is stateful
func (env *AnchorTestEnviron) SetupTest() {
	env.store = testfont.Store(
		testfont.Glyph("a", 'a', 0, 0,
			"###",
			"#.#",
			"###",
		),
		testfont.Glyph("e", 'e', 0, 0,
			"###",
			"##.",
			"###",
		),
		testfont.Glyph("uni0301", 0x0301, 4, 1,
			"#",
		),
		testfont.Glyph("uni0327", 0x0327, -2, 1,
			"#",
			"#",
		),
	)
	env.reg = NewRegistry()
	env.log = NewIssueLog()
	env.synth = NewSynthesizer(env.store, env.reg, env.log)
}

func (env *AnchorTestEnviron) composed(name string, code rune) *pix.Glyph {
	return &pix.Glyph{Name: name, Code: pix.Some(code),
		Bitmap: pix.NewBitmap(1, 1), Advance: 4}
}

// --- Tests -----------------------------------------------------------------

func (env *AnchorTestEnviron) TestMarkAnchorPlacement() {
	aacute := env.composed("aacute", 0xe1)
	env.synth.AddAnchors(aacute, []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	// the acute is 1 pixel wide, so its anchor sits at its own grid
	// position: underside, horizontally centered
	markAnchor, ok := env.reg.MarkAnchor("uni0301", "top.shifted")
	env.Require().True(ok, "expected a cached mark anchor")
	env.Equal(pix.Offset{Y: 4, X: 1}, markAnchor)

	anchors := env.reg.AnchorsOf("a")
	env.Require().Len(anchors, 1)
	env.Equal("top.shifted", anchors[0].Name)
	env.Equal(pix.Offset{Y: 4, X: 1}, anchors[0].Pos)
	env.False(env.log.HasWarnings())
}

func (env *AnchorTestEnviron) TestBottomClassAnchor() {
	// the cedilla hangs below the base, its anchor sits at its upper edge
	ccedilla := env.composed("ccedilla", 0xe7)
	env.synth.AddAnchors(ccedilla, []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0327", Offset: pix.Offset{Y: -2, X: 1}},
	})
	markAnchor, ok := env.reg.MarkAnchor("uni0327", "cedilla")
	env.Require().True(ok)
	env.Equal(pix.Offset{Y: 0, X: 1}, markAnchor,
		"expected the anchor at the cedilla's upper edge")
}

func (env *AnchorTestEnviron) TestFirstRegistrationWins() {
	aacute := env.composed("aacute", 0xe1)
	env.synth.AddAnchors(aacute, []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	// a second composition of the same base with the mark elsewhere
	shifted := env.composed("aacute.alt", 0x1ea5)
	env.synth.AddAnchors(shifted, []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 2}},
	})
	anchors := env.reg.AnchorsOf("a")
	env.Require().Len(anchors, 1)
	env.Equal(pix.Offset{Y: 4, X: 1}, anchors[0].Pos, "expected the first position to stay")
	env.Require().True(env.log.HasWarnings())
	env.Len(env.log.Warnings(), 1)
}

func (env *AnchorTestEnviron) TestSeparateBasesNoConflict() {
	env.synth.AddAnchors(env.composed("aacute", 0xe1), []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	env.synth.AddAnchors(env.composed("eacute", 0xe9), []Placement{
		{Name: "e", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 0}},
	})
	env.False(env.log.HasWarnings())
	env.Equal([]string{"a", "e"}, env.reg.BaseGlyphNames())
}

func (env *AnchorTestEnviron) TestExcludedComposition() {
	// Greek iota with marks is on the manual exclusion list
	excluded := env.composed("iotatonos", 0x3b9)
	env.synth.AddAnchors(excluded, []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	env.Empty(env.reg.MarkGlyphNames())
	env.Empty(env.reg.BaseGlyphNames())
}

func (env *AnchorTestEnviron) TestThreeComponentsSkipped() {
	composed := env.composed("multi", 0x1fa0)
	env.synth.AddAnchors(composed, []Placement{
		{Name: "a", Offset: pix.Offset{}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
		{Name: "uni0327", Offset: pix.Offset{Y: -2, X: 1}},
	})
	env.Empty(env.reg.BaseGlyphNames())
}

func (env *AnchorTestEnviron) TestGroupings() {
	env.synth.AddAnchors(env.composed("aacute", 0xe1), []Placement{
		{Name: "a", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	env.synth.AddAnchors(env.composed("eacute", 0xe9), []Placement{
		{Name: "e", Offset: pix.Offset{Y: 0, X: 0}},
		{Name: "uni0301", Offset: pix.Offset{Y: 4, X: 1}},
	})
	markGroups := env.reg.MarkGroups()
	env.Require().Len(markGroups, 1)
	env.Equal([]string{"uni0301"}, markGroups[0].Glyphs)

	baseGroups := env.reg.BaseGroups()
	env.Require().Len(baseGroups, 1, "identical anchor sets should share one group")
	env.Equal([]string{"a", "e"}, baseGroups[0].Glyphs)
}
