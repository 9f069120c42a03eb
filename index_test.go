package lexiloc

import "testing"

func TestBuildTranslationMap(t *testing.T) {
	source := map[string]string{
		"id1": "Orokin",
		"id2": "Void",
		"id3": "Relic",
		"id4": "",
		"id5": "Forma",
	}
	target := map[string]string{
		"id1": "奥罗金",
		"id2": "Void", // identical to source: dropped
		"id3": "",     // empty: dropped
		"id4": "ignored",
		// id5 absent: dropped
	}

	m := BuildTranslationMap(source, target)

	if len(m) != 1 {
		t.Fatalf("len = %d, want 1 (got %v)", len(m), m)
	}
	if m["Orokin"] != "奥罗金" {
		t.Errorf("m[Orokin] = %q, want 奥罗金", m["Orokin"])
	}
}

func TestBuildTranslationMapFirstMappingWins(t *testing.T) {
	// The same source phrase under two identifiers: the first identifier in
	// sorted order wins, later duplicates are discarded.
	source := map[string]string{
		"a_first":  "Orokin",
		"z_second": "Orokin",
	}
	target := map[string]string{
		"a_first":  "奥罗金",
		"z_second": "different",
	}

	m := BuildTranslationMap(source, target)

	if m["Orokin"] != "奥罗金" {
		t.Errorf("m[Orokin] = %q, want 奥罗金 (first mapping must win)", m["Orokin"])
	}
	if len(m) != 1 {
		t.Errorf("len = %d, want 1", len(m))
	}
}

func TestBuildTranslationMapEmpty(t *testing.T) {
	if m := BuildTranslationMap(nil, nil); len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
	if m := BuildTranslationMap(map[string]string{"a": "x"}, nil); len(m) != 0 {
		t.Errorf("expected empty map with nil target, got %v", m)
	}
}
