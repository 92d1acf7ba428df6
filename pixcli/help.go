package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	t := strings.ToLower(topic)
	switch t {
	case "glyph":
		pterm.Info.Println("glyph <name | codepoint>")
		pterm.Println(`
	Prints a glyph from the store: its bitmap, grid offset and advance,
	and the composition outcome (component placements if the glyph could
	be expressed through components).
	Codepoints may be given as 0xe1 or U+00E1.
	`)
	case "decompose":
		pterm.Info.Println("decompose <codepoint>")
		pterm.Println(`
	Prints the single-level canonical decomposition used for composition,
	including the manual overrides.
	`)
	case "anchors":
		pterm.Info.Println("anchors <name | codepoint>")
		pterm.Println(`
	Prints the mark-attachment anchors registered for a glyph. Anchor
	positions are pixel-grid coordinates relative to the baseline/origin.
	`)
	case "issues":
		pterm.Info.Println("issues")
		pterm.Println(`
	Prints all notes and warnings the conversion recorded: glyphs that
	could be composed if marks were added to the font, glyphs whose
	decomposition does not tile, anchors that do not align.
	`)
	default:
		pterm.Info.Println("Commands: glyph, decompose, anchors, issues, quit; help <command>")
	}
}
