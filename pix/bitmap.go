package pix

import "strings"

// Bitmap is a binary pixel matrix. Rows are stored bottom-up: row 0 is the
// lowest pixel row (see the package comment for the coordinate convention).
type Bitmap struct {
	H, W int
	bits []uint8
}

// NewBitmap creates an all-off bitmap of h rows and w columns.
// Dimensions must be positive.
func NewBitmap(h, w int) *Bitmap {
	if h <= 0 || w <= 0 {
		panic("pix: bitmap dimensions must be positive")
	}
	return &Bitmap{H: h, W: w, bits: make([]uint8, h*w)}
}

// At reports whether the pixel at row y, column x is on.
func (b *Bitmap) At(y, x int) bool {
	return b.bits[y*b.W+x] != 0
}

// Set turns the pixel at row y, column x on.
func (b *Bitmap) Set(y, x int) {
	b.bits[y*b.W+x] = 1
}

// Any reports whether at least one pixel is on.
func (b *Bitmap) Any() bool {
	for _, v := range b.bits {
		if v != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of on-pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{H: b.H, W: b.W, bits: make([]uint8, len(b.bits))}
	copy(c.bits, b.bits)
	return c
}

// Equal reports pixel-wise equality, including dimensions.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.H != other.H || b.W != other.W {
		return false
	}
	for i, v := range b.bits {
		if (v != 0) != (other.bits[i] != 0) {
			return false
		}
	}
	return true
}

// Crop returns a copy cropped to the tight bounding box of on-pixels,
// together with the (row, column) position of the crop within b. A bitmap
// without any on-pixel degenerates to a single empty cell at (0,0).
func (b *Bitmap) Crop() (*Bitmap, int, int) {
	minY, minX := b.H, b.W
	maxY, maxX := -1, -1
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.At(y, x) {
				continue
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
	}
	if maxY < 0 {
		return NewBitmap(1, 1), 0, 0
	}
	c := NewBitmap(maxY-minY+1, maxX-minX+1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if b.At(y, x) {
				c.Set(y-minY, x-minX)
			}
		}
	}
	return c, minY, minX
}

// String renders the bitmap with '#' for on and '.' for off pixels, topmost
// row first. Intended for traces and test failure output.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := b.H - 1; y >= 0; y-- {
		for x := 0; x < b.W; x++ {
			if b.At(y, x) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBitmap builds a bitmap from rows of '#' (on) and anything else (off),
// given topmost row first. All rows must have equal length.
func ParseBitmap(rows ...string) *Bitmap {
	if len(rows) == 0 {
		return NewBitmap(1, 1)
	}
	b := NewBitmap(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != b.W {
			panic("pix: ragged bitmap rows")
		}
		y := len(rows) - 1 - i
		for x := 0; x < b.W; x++ {
			if row[x] == '#' {
				b.Set(y, x)
			}
		}
	}
	return b
}
