package ufo

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAxisDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	for _, tag := range AxisTags() {
		a, ok := AxisInfo(tag)
		if !ok {
			t.Fatalf("axis %q has no definition", tag)
		}
		if a.Min >= a.Max {
			t.Errorf("axis %q has degenerate range [%g,%g]", tag, a.Min, a.Max)
		}
		if a.Default < a.Min || a.Default > a.Max {
			t.Errorf("axis %q default %g outside [%g,%g]", tag, a.Default, a.Min, a.Max)
		}
	}
	if _, ok := AxisInfo("WGHT"); ok {
		t.Error("expected unknown axis to be rejected")
	}
}

func TestParseLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	loc, err := ParseLocation("ESIZ=0.5,ROND=1")
	if err != nil {
		t.Fatal(err)
	}
	if loc["ESIZ"] != 0.5 || loc["ROND"] != 1 {
		t.Errorf("unexpected location %v", loc)
	}
	// a bare tag is assigned zero
	loc, err = ParseLocation("EJIT")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := loc["EJIT"]; !ok || v != 0 {
		t.Errorf("expected bare tag to parse as 0, got %v", loc)
	}
	if _, err = ParseLocation("WGHT=400"); err == nil {
		t.Error("expected an error for an unknown axis")
	}
}

func TestLocationValueFallsBackToDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	loc := Location{"ROND": 0.25}
	if loc.Value("ROND") != 0.25 {
		t.Error("expected explicit value")
	}
	if loc.Value("ESIZ") != 1 {
		t.Errorf("expected ESIZ default 1, got %g", loc.Value("ESIZ"))
	}
}

func TestMastersSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	masters := Masters(nil, "Regular")
	if len(masters) != 1 {
		t.Fatalf("expected a single master, got %d", len(masters))
	}
	if masters[0].Name != "Regular" || len(masters[0].Location) != 0 {
		t.Errorf("unexpected master %+v", masters[0])
	}
}

func TestMastersCrossProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	masters := Masters([]string{"ESIZ", "ROND"}, "Bold")
	if len(masters) != 4 {
		t.Fatalf("expected 4 masters for 2 axes, got %d", len(masters))
	}
	first := masters[0]
	if first.Name != "ESIZmin RONDmin Bold" {
		t.Errorf("unexpected first master name %q", first.Name)
	}
	if first.Location["ESIZ"] != 0.1 || first.Location["ROND"] != 0 {
		t.Errorf("unexpected first master location %v", first.Location)
	}
	last := masters[3]
	if last.Name != "ESIZmax RONDmax Bold" {
		t.Errorf("unexpected last master name %q", last.Name)
	}
	if last.Location["ESIZ"] != 1 || last.Location["ROND"] != 1 {
		t.Errorf("unexpected last master location %v", last.Location)
	}
	seen := make(map[string]bool)
	for _, m := range masters {
		if seen[m.Name] {
			t.Errorf("duplicate master name %q", m.Name)
		}
		seen[m.Name] = true
	}
}

func TestSetAxisLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixeltype")
	defer teardown()
	//
	orig, _ := AxisInfo("XESP")
	defer SetAxisLimits("XESP", orig.Min, orig.Max)

	if err := SetAxisLimits("XESP", 0.25, 1.2); err != nil {
		t.Fatal(err)
	}
	a, _ := AxisInfo("XESP")
	if a.Min != 0.25 || a.Max != 1.2 || a.Default != 1.2 {
		t.Errorf("unexpected limits %+v", a)
	}
	if err := SetAxisLimits("WGHT", 0, 1); err == nil {
		t.Error("expected an error for an unknown axis")
	}
}
