/*
Package ufo serializes a converted pixel font into UFO-3 font sources plus a
designspace document for variable-font builds.

Standalone glyphs are rendered as a sequence of references to a shared pixel
element glyph '_' (a rounded rectangle whose geometry follows the variable
axes); composed glyphs become component references with integer offsets;
anchors and the mark-positioning feature code are emitted from the anchor
registry of package compose.

UFO (Unified Font Object) reference: https://unifiedfontobject.org/versions/ufo3/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ufo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}
