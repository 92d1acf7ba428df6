package compose

import (
	"fmt"

	"github.com/npillmayer/pixeltype/pix"
)

// Registry is the anchor cache of one font conversion. Anchors are
// registered per glyph under an anchor name; the first registration of a
// (glyph, anchor name) pair wins and later registrations never overwrite it.
// Mark anchors (on combining glyphs) and base anchors (on base glyphs) are
// kept apart, and all registration order is retained so that every pass over
// the registry is deterministic.
//
// A registry lives for the duration of one conversion and is discarded
// afterwards. It is not safe for concurrent use; a parallelized conversion
// would have to lock it, because later glyphs depend on anchors cached by
// earlier ones.
type Registry struct {
	marks     map[string]map[string]pix.Offset
	bases     map[string]map[string]pix.Offset
	markOrder []string
	baseOrder []string
	anchors   map[string][]string // per glyph: anchor names in registration order
}

// NewRegistry creates an empty anchor registry.
func NewRegistry() *Registry {
	return &Registry{
		marks:   make(map[string]map[string]pix.Offset),
		bases:   make(map[string]map[string]pix.Offset),
		anchors: make(map[string][]string),
	}
}

// MarkAnchor returns the cached anchor position for a mark glyph, in the
// mark glyph's own grid frame.
func (r *Registry) MarkAnchor(glyph, anchor string) (pix.Offset, bool) {
	pos, ok := r.marks[glyph][anchor]
	return pos, ok
}

// PutMarkAnchor caches a mark glyph's anchor position. The first
// registration wins; re-registering an existing pair is a no-op.
func (r *Registry) PutMarkAnchor(glyph, anchor string, pos pix.Offset) {
	anchors, ok := r.marks[glyph]
	if !ok {
		anchors = make(map[string]pix.Offset)
		r.marks[glyph] = anchors
		r.markOrder = append(r.markOrder, glyph)
	}
	if _, taken := anchors[anchor]; taken {
		return
	}
	anchors[anchor] = pos
	r.anchors[glyph] = append(r.anchors[glyph], anchor)
}

// RegisterBase registers a base glyph's anchor position. It returns the
// authoritative position and whether the registration conflicted with an
// earlier, differing one (in which case the earlier position is kept).
func (r *Registry) RegisterBase(glyph, anchor string, pos pix.Offset) (pix.Offset, bool) {
	anchors, ok := r.bases[glyph]
	if !ok {
		anchors = make(map[string]pix.Offset)
		r.bases[glyph] = anchors
		r.baseOrder = append(r.baseOrder, glyph)
	}
	if prev, taken := anchors[anchor]; taken {
		return prev, prev != pos
	}
	anchors[anchor] = pos
	r.anchors[glyph] = append(r.anchors[glyph], anchor)
	return pos, false
}

// AnchorsOf returns a glyph's anchors in registration order, whether the
// glyph is a mark or a base.
func (r *Registry) AnchorsOf(glyph string) []Anchor {
	names := r.anchors[glyph]
	if len(names) == 0 {
		return nil
	}
	table := r.marks[glyph]
	if table == nil {
		table = r.bases[glyph]
	}
	anchors := make([]Anchor, len(names))
	for i, name := range names {
		anchors[i] = Anchor{Name: name, Pos: table[name]}
	}
	return anchors
}

// MarkGroup collects mark glyphs sharing one identical (anchor name,
// position) pair. The feature emitter turns each group into one mark class.
type MarkGroup struct {
	Anchor Anchor
	Glyphs []string
}

// BaseGroup collects base glyphs sharing an identical ordered set of
// (anchor name, position) pairs. The feature emitter turns each group into
// one mark-to-base positioning statement.
type BaseGroup struct {
	Anchors []Anchor
	Glyphs  []string
}

// MarkGroups groups mark glyphs by identical (anchor name, position) pairs,
// in first-registration order.
func (r *Registry) MarkGroups() []MarkGroup {
	var groups []MarkGroup
	index := make(map[string]int)
	for _, glyph := range r.markOrder {
		for _, a := range r.AnchorsOf(glyph) {
			key := fmt.Sprintf("%s@%v", a.Name, a.Pos)
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, MarkGroup{Anchor: a})
			}
			groups[i].Glyphs = append(groups[i].Glyphs, glyph)
		}
	}
	return groups
}

// BaseGroups groups base glyphs by identical anchor sets, in
// first-registration order.
func (r *Registry) BaseGroups() []BaseGroup {
	var groups []BaseGroup
	index := make(map[string]int)
	for _, glyph := range r.baseOrder {
		anchors := r.AnchorsOf(glyph)
		key := ""
		for _, a := range anchors {
			key += fmt.Sprintf("%s@%v;", a.Name, a.Pos)
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, BaseGroup{Anchors: anchors})
		}
		groups[i].Glyphs = append(groups[i].Glyphs, glyph)
	}
	return groups
}

// MarkGlyphNames returns all mark glyphs holding anchors, in registration
// order.
func (r *Registry) MarkGlyphNames() []string {
	return r.markOrder
}

// BaseGlyphNames returns all base glyphs holding anchors, in registration
// order.
func (r *Registry) BaseGlyphNames() []string {
	return r.baseOrder
}
