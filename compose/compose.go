/*
Package compose decides whether a composed bitmap glyph (say, an accented
letter) can be expressed as a geometric tiling of already-known component
glyphs, and derives attachment anchors for mark-over-base positioning from
such tilings.

The pipeline per composed glyph is: resolve the decomposition (override
table, then canonical Unicode data), search for a tiling — one translation
offset per component such that the union of the placed component bitmaps
reconstructs the composed bitmap exactly — and, for successful two-component
tilings, synthesize a named anchor on both the mark and the base component.
Anchor positions are cached in a Registry with first-registration-wins
semantics so that a mark attaches identically wherever it appears.

Everything here is deterministic: the search is depth-first with offsets
tried in row-major order, and the first full solution wins.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package compose

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}

// Status is the outcome of a tiling search.
type Status int

const (
	// Tiled: a placement per component was found; their union reconstructs
	// the composed bitmap exactly.
	Tiled Status = iota
	// Missing: some component has no corresponding glyph in the store.
	Missing
	// Mismatch: all component glyphs exist, but no placement sequence
	// reconstructs the composed bitmap.
	Mismatch
	// Uncomposable: a combining mark's modifier-letter substitute would
	// reference the glyph currently being composed.
	Uncomposable
)

func (s Status) String() string {
	switch s {
	case Tiled:
		return "tiled"
	case Missing:
		return "missing"
	case Mismatch:
		return "mismatch"
	case Uncomposable:
		return "uncomposable"
	default:
		return "unknown"
	}
}

// Placement is one component of a successful tiling: a glyph name and the
// absolute grid position of the component's bitmap cell (0,0), in the same
// shared grid as the composed glyph.
type Placement struct {
	Name   string
	Offset pix.Offset
}

// Anchor is a named attachment point at a grid position, local to the glyph
// it is registered on.
type Anchor struct {
	Name string
	Pos  pix.Offset
}

// FormatCodes renders a component code sequence as "U+0061, U+0301".
func FormatCodes(codes []rune) string {
	var sb strings.Builder
	for i, c := range codes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "U+%04x", c)
	}
	return sb.String()
}
