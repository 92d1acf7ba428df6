package compose

import (
	"github.com/npillmayer/pixeltype/pix"
)

// Tiler searches for tilings of composed glyphs against a glyph store.
type Tiler struct {
	store *pix.Store
}

// NewTiler creates a tiler over the given glyph store.
func NewTiler(store *pix.Store) *Tiler {
	return &Tiler{store: store}
}

// frame is the search state for one component: the resolved component glyph,
// the accumulator as it was before this component painted, the row-major
// offset cursor, and — once a legal placement is found — the painted
// accumulator and the chosen translation.
type frame struct {
	comp       *pix.Glyph
	acc        *pix.Bitmap
	dy, dx     int
	maxY, maxX int
	painted    *pix.Bitmap
	at         pix.Offset
}

// Tile searches for one placement per component such that the union of the
// placed component bitmaps reconstructs the composed glyph's bitmap exactly.
// The search is depth-first over translation offsets in row-major order and
// stops at the first full solution, so results are deterministic. On success
// it returns the placements, in decomposition order, with absolute grid
// offsets. Missing and Uncomposable abort the search immediately — they are
// font-data problems, not search failures — while exhausted placements
// backtrack and finally report Mismatch.
//
// The recursion of the textbook formulation is flattened into an explicit
// stack of frames; each frame keeps its own accumulator snapshot, so
// backtracking is a plain pop.
func (t *Tiler) Tile(composed *pix.Glyph, decomposition []rune) ([]Placement, Status) {
	acc := pix.NewBitmap(composed.Bitmap.H, composed.Bitmap.W)
	if len(decomposition) == 0 {
		if acc.Equal(composed.Bitmap) {
			return []Placement{}, Tiled
		}
		return nil, Mismatch
	}
	stack := make([]*frame, 0, len(decomposition))
	first, status := t.enter(composed, decomposition[0], acc)
	if status != Tiled {
		return nil, status
	}
	stack = append(stack, first)
	for {
		top := stack[len(stack)-1]
		if !top.advance(composed.Bitmap) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil, Mismatch
			}
			continue
		}
		if len(stack) < len(decomposition) {
			next, status := t.enter(composed, decomposition[len(stack)], top.painted)
			if status != Tiled {
				return nil, status
			}
			stack = append(stack, next)
			continue
		}
		if top.painted.Equal(composed.Bitmap) {
			placements := make([]Placement, len(stack))
			for i, f := range stack {
				placements[i] = Placement{
					Name:   f.comp.Name,
					Offset: composed.Offset.Add(f.at),
				}
			}
			tracer().Debugf("tiled %s with %d components", composed.CodeString(), len(placements))
			return placements, Tiled
		}
		// union too small: keep sliding the last component
	}
}

// enter resolves a component code and opens a fresh frame for it. Resolution
// happens lazily, when the previous component has found a placement, so that
// an unfittable earlier component reports Mismatch before a later component
// gets the chance to report Missing.
func (t *Tiler) enter(composed *pix.Glyph, code rune, acc *pix.Bitmap) (*frame, Status) {
	comp, status := t.resolve(composed, code)
	if status != Tiled {
		return nil, status
	}
	return &frame{
		comp: comp,
		acc:  acc,
		maxY: composed.Bitmap.H - comp.Bitmap.H,
		maxX: composed.Bitmap.W - comp.Bitmap.W,
	}, Tiled
}

// resolve finds the glyph for a component code, in up to two stages: the
// store's glyph for the code itself, else the glyph of the combining mark's
// modifier-letter substitute. A substitute referencing the glyph currently
// being composed is the Uncomposable case and must fail rather than loop.
func (t *Tiler) resolve(composed *pix.Glyph, code rune) (*pix.Glyph, Status) {
	if g, ok := t.store.ByCode(code); ok {
		return g, Tiled
	}
	mark, ok := MarkInfo(code)
	if !ok || mark.Modifier == 0 {
		return nil, Missing
	}
	if composed.HasCode(mark.Modifier) {
		return nil, Uncomposable
	}
	if g, ok := t.store.ByCode(mark.Modifier); ok {
		return g, Tiled
	}
	return nil, Missing
}

// advance moves the frame's cursor to its next legal placement, painting the
// component into a copy of the accumulator. It reports false when the offset
// range is exhausted (immediately so for components larger than the composed
// bitmap in either dimension).
func (f *frame) advance(composed *pix.Bitmap) bool {
	if f.maxY < 0 || f.maxX < 0 {
		return false
	}
	for f.dy <= f.maxY {
		dy, dx := f.dy, f.dx
		if f.dx < f.maxX {
			f.dx++
		} else {
			f.dx = 0
			f.dy++
		}
		if painted := paint(composed, f.comp.Bitmap, f.acc, dy, dx); painted != nil {
			f.painted = painted
			f.at = pix.Offset{Y: dy, X: dx}
			return true
		}
	}
	return false
}

// paint draws comp at translation (dy, dx) into a copy of acc. Painting
// fails when any pixel the component turns on is off in the composed bitmap;
// overlap with pixels painted by earlier components is fine (two components
// may legitimately cover the same pixel, think touching serifs).
func paint(composed, comp, acc *pix.Bitmap, dy, dx int) *pix.Bitmap {
	out := acc.Clone()
	for y := 0; y < comp.H; y++ {
		for x := 0; x < comp.W; x++ {
			if !comp.At(y, x) {
				continue
			}
			ty, tx := dy+y, dx+x
			if !composed.At(ty, tx) {
				return nil
			}
			out.Set(ty, tx)
		}
	}
	return out
}
