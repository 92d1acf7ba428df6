package compose

import (
	"github.com/npillmayer/pixeltype/pix"
)

// Synthesizer derives attachment anchors from successful two-component
// tilings and registers them with a Registry.
type Synthesizer struct {
	store *pix.Store
	reg   *Registry
	log   *IssueLog
}

// NewSynthesizer creates an anchor synthesizer over a glyph store, writing
// into the given registry and issue log.
func NewSynthesizer(store *pix.Store, reg *Registry, log *IssueLog) *Synthesizer {
	return &Synthesizer{store: store, reg: reg, log: log}
}

// AddAnchors derives anchors for one tiled composition. Only compositions
// with exactly two placements — one combining mark and one base — get
// anchors; everything else, and every composed character on the manual
// exclusion list, keeps its placements without anchors.
//
// The mark-side anchor is computed once per (mark glyph, anchor name):
// horizontally centered on the mark's bitmap, vertically at the mark's
// underside, or at its upper edge for anchor classes attaching below the
// base. The cached position is reused for every later composition of the
// same mark, so the anchor is geometrically identical wherever the mark
// appears. The base-side anchor is the mark anchor translated into the base
// glyph's own frame; if the base already holds a differing anchor of this
// name from an earlier composition, a warning is recorded and the earlier
// position stays authoritative.
func (s *Synthesizer) AddAnchors(composed *pix.Glyph, placements []Placement) {
	if code, ok := composed.Code.Unwrap(); ok && AnchorExcluded(code) {
		return
	}
	if len(placements) != 2 {
		return
	}
	var base, mark *pix.Glyph
	var basePl, markPl Placement
	var info Mark
	for _, pl := range placements {
		g, ok := s.store.Glyph(pl.Name)
		if !ok {
			return
		}
		code, encoded := g.Code.Unwrap()
		if m, isMark := MarkInfo(code); encoded && isMark {
			mark, markPl, info = g, pl, m
		} else {
			base, basePl = g, pl
		}
	}
	if base == nil || mark == nil {
		return
	}
	anchorName := info.Anchor
	markAnchor, cached := s.reg.MarkAnchor(mark.Name, anchorName)
	if !cached {
		local := pix.Offset{X: mark.Bitmap.W / 2}
		if attachesBelow(anchorName) {
			local.Y = mark.Bitmap.H
		}
		markAnchor = mark.Offset.Add(local)
		s.reg.PutMarkAnchor(mark.Name, anchorName, markAnchor)
		tracer().Debugf("mark %s gets anchor %q at %v", mark.Name, anchorName, markAnchor)
	}
	// translate the mark anchor into this composition's grid, then into the
	// base glyph's own frame
	grid := markPl.Offset.Add(markAnchor.Sub(mark.Offset))
	basePos := grid.Sub(basePl.Offset).Add(base.Offset)
	if prev, conflict := s.reg.RegisterBase(base.Name, anchorName, basePos); conflict {
		s.log.Warnf(composed.Name, composed.Code.Or(-1), "anchors",
			"anchor %q does not align with anchors from components [%s, %s], keeping %v",
			anchorName, placements[0].Name, placements[1].Name, prev)
	}
}
