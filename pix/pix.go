/*
Package pix holds the data model for bitmap pixel fonts: binary pixel
matrices, glyph records and the glyph store a font conversion operates on.

Coordinates follow the font's design grid: bitmap row 0 is the lowest pixel
row and row indices grow upward, i.e., along the y axis away from the
descender. An offset (Y, X) positions a bitmap's cell (0,0) on the shared
grid, relative to the baseline/origin of the font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}
