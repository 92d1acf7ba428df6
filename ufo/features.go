package ufo

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/pix"
)

// FeatureText emits the OpenType feature code (AFDKO .fea syntax) for the
// mark-attachment anchors of a conversion: language systems for the scripts
// the font covers, the @allmarks and @topmarks classes, one markClass
// statement per group of marks sharing an anchor position, one mark-to-base
// positioning statement per group of bases sharing an anchor set, and a GDEF
// glyph class definition flagging the combining glyphs as marks.
//
// Anchor coordinates in feature code are pixel positions scaled to font
// units; the global glyph offset does not apply here, it is already baked
// into the glyph outlines the anchors accompany.
func FeatureText(store *pix.Store, reg *compose.Registry, unitsPerElementY int, unitsPerElementX float64) string {
	var sb strings.Builder

	sb.WriteString("languagesystem DFLT dflt;\n")
	if store.Has(0x41) {
		sb.WriteString("languagesystem latn dflt;\n")
	}
	if store.Has(0x391) {
		sb.WriteString("languagesystem grek dflt;\n")
	}
	if store.Has(0x410) {
		sb.WriteString("languagesystem cyrl dflt;\n")
	}

	var allmarks, topmarks []string
	for _, code := range compose.MarkCodes() {
		name, ok := store.NameOf(code)
		if !ok {
			continue
		}
		allmarks = append(allmarks, name)
		mark, _ := compose.MarkInfo(code)
		if compose.TopAnchorClass(mark.Anchor) {
			topmarks = append(topmarks, name)
		}
	}
	fmt.Fprintf(&sb, "@allmarks = [%s];\n", strings.Join(allmarks, " "))
	fmt.Fprintf(&sb, "@topmarks = [%s];\n", strings.Join(topmarks, " "))

	markGroups := reg.MarkGroups()
	baseGroups := reg.BaseGroups()
	if len(markGroups) > 0 && len(baseGroups) > 0 {
		sb.WriteString("lookup marklookup {\n")
		for _, g := range markGroups {
			fmt.Fprintf(&sb, "    markClass [%s] %s @%s;\n",
				strings.Join(g.Glyphs, " "),
				featureAnchor(g.Anchor.Pos, unitsPerElementY, unitsPerElementX),
				g.Anchor.Name)
		}
		for _, g := range baseGroups {
			fmt.Fprintf(&sb, "    pos base [%s]", strings.Join(g.Glyphs, " "))
			for _, a := range g.Anchors {
				fmt.Fprintf(&sb, " %s mark @%s",
					featureAnchor(a.Pos, unitsPerElementY, unitsPerElementX), a.Name)
			}
			sb.WriteString(";\n")
		}
		sb.WriteString("} marklookup;\n\n")
		sb.WriteString("feature mark {\n    lookup marklookup;\n} mark;\n\n")
	}

	sb.WriteString("table GDEF {\n    GlyphClassDef , @allmarks, , ;\n} GDEF;\n")
	return sb.String()
}

func featureAnchor(pos pix.Offset, unitsPerElementY int, unitsPerElementX float64) string {
	x := int(math.Trunc(float64(pos.X) * unitsPerElementX))
	y := pos.Y * unitsPerElementY
	return fmt.Sprintf("<anchor %d %d>", x, y)
}
