package pix

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStoreNameAllocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := NewStore()
	cases := []struct {
		raw, want string
	}{
		{"A", "A"},
		{"uni00e1", "uni00e1"},
		{"space glyph", "space_glyph"},
		{".notdef", "_.notdef"},
		{"0zero", "0zero"},
	}
	for _, c := range cases {
		got := store.AllocateName(c.raw)
		if got != c.want {
			t.Errorf("AllocateName(%q) = %q, want %q", c.raw, got, c.want)
		}
		store.Add(&Glyph{Name: got, Bitmap: NewBitmap(1, 1)})
	}
}

func TestStoreNameCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := NewStore()
	first := store.AllocateName("a b")
	store.Add(&Glyph{Name: first, Bitmap: NewBitmap(1, 1)})
	second := store.AllocateName("a_b")
	if first == second {
		t.Fatalf("expected distinct names, both are %q", first)
	}
	if second != "a_b_" {
		t.Errorf("expected collision to resolve to 'a_b_', got %q", second)
	}
}

func TestStoreCodeIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := NewStore()
	store.Add(&Glyph{Name: "a", Code: Some[rune]('a'), Bitmap: NewBitmap(1, 1)})
	store.Add(&Glyph{Name: "a.alt", Code: Some[rune]('a'), Bitmap: NewBitmap(1, 1)})
	name, ok := store.NameOf('a')
	if !ok || name != "a" {
		t.Errorf("expected code index to keep the first glyph 'a', got %q", name)
	}
	if g, ok := store.ByCode('a'); !ok || g.Name != "a" {
		t.Error("expected ByCode to resolve to the first glyph")
	}
	if store.Has('b') {
		t.Error("expected no glyph for 'b'")
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	store := NewStore()
	names := []string{"zeta", "alpha", "mu"}
	for _, n := range names {
		store.Add(&Glyph{Name: n, Bitmap: NewBitmap(1, 1)})
	}
	got := store.Names()
	for i, n := range names {
		if got[i] != n {
			t.Fatalf("expected insertion order %v, got %v", names, got)
		}
	}
}

func TestSubsetParseAndMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	subset, err := ParseSubset("0x20-0x7e,0xa0")
	if err != nil {
		t.Fatal(err)
	}
	for code, want := range map[rune]bool{
		0x1f: false, 0x20: true, 0x7e: true, 0x7f: false, 0xa0: true, 0xa1: false,
	} {
		if subset.Match(code) != want {
			t.Errorf("Match(0x%x) = %v, want %v", code, !want, want)
		}
	}
	var all Subset
	if !all.Match(0x1234) {
		t.Error("expected the zero-value subset to match everything")
	}
}
