package pests

import (
	"testing"

	"github.com/aumai/kisanmitra/internal/models"
)

func names(ps []models.Pest) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestCatalogSize(t *testing.T) {
	c := NewCatalog()
	if n := len(c.All()); n < 30 {
		t.Errorf("catalogue has %d entries, want at least 30", n)
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for _, p := range NewCatalog().All() {
		if p.Name == "" {
			t.Fatal("pest with empty name")
		}
		if len(p.AffectedCrops) == 0 {
			t.Errorf("%s: no affected crops", p.Name)
		}
		if len(p.Symptoms) == 0 {
			t.Errorf("%s: no symptoms", p.Name)
		}
		if len(p.Treatment) == 0 {
			t.Errorf("%s: no treatment", p.Name)
		}
		if len(p.Prevention) == 0 {
			t.Errorf("%s: no prevention", p.Name)
		}
	}
}

func TestIdentify_HopperburnFindsBrownPlantHopper(t *testing.T) {
	c := NewCatalog()
	got := c.Identify([]string{"hopperburn"})
	if len(got) == 0 {
		t.Fatal("no matches for hopperburn")
	}
	if got[0].Name != "Brown Plant Hopper" {
		t.Errorf("top match = %s, want Brown Plant Hopper", got[0].Name)
	}
}

func TestIdentify_HigherOverlapRanksFirst(t *testing.T) {
	c := NewCatalog()
	// Brown Plant Hopper records yellowing, hopperburn, and wilting: all
	// three inputs match it, while most pests match only "yellowing".
	got := c.Identify([]string{"yellowing", "hopperburn", "wilting"})
	if len(got) < 2 {
		t.Fatalf("expected multiple matches, got %d", len(got))
	}
	if got[0].Name != "Brown Plant Hopper" {
		t.Errorf("top match = %s, want Brown Plant Hopper", got[0].Name)
	}
}

func TestIdentify_InputSymptomCountsOnce(t *testing.T) {
	c := NewCatalog()
	// "yellow" is a substring of both "yellow stripe pustules" and
	// "yellow powder on leaves" for Yellow Rust, but one input contributes
	// a score of 1, so a two-symptom match must still outrank it.
	got := c.Identify([]string{"yellow", "stunted growth"})
	if len(got) == 0 {
		t.Fatal("no matches")
	}
	if got[0].Name != "Aphids" {
		// Aphids is the first catalogue entry matching both inputs.
		t.Errorf("top match = %s, want Aphids", got[0].Name)
	}
}

func TestIdentify_CaseInsensitive(t *testing.T) {
	c := NewCatalog()
	lower := c.Identify([]string{"hopperburn"})
	upper := c.Identify([]string{"HOPPERBURN"})
	if len(lower) != len(upper) {
		t.Fatalf("case changed match count: %d vs %d", len(lower), len(upper))
	}
	if lower[0].Name != upper[0].Name {
		t.Errorf("case changed top match: %s vs %s", lower[0].Name, upper[0].Name)
	}
}

func TestIdentify_WholePhraseMatching(t *testing.T) {
	c := NewCatalog()
	got := c.Identify([]string{"sticky honeydew"})
	if len(got) != 1 || got[0].Name != "Aphids" {
		t.Fatalf("whole-phrase match = %v, want only Aphids", names(got))
	}
	// The reversed phrase is not a substring of any recorded symptom.
	if got := c.Identify([]string{"honeydew sticky"}); len(got) != 0 {
		t.Errorf("reversed phrase matched %v, want none", names(got))
	}
}

func TestIdentify_EmptyInputReturnsEmpty(t *testing.T) {
	c := NewCatalog()
	if got := c.Identify(nil); len(got) != 0 {
		t.Errorf("nil input matched %d pests", len(got))
	}
	if got := c.Identify([]string{}); len(got) != 0 {
		t.Errorf("empty input matched %d pests", len(got))
	}
}

func TestIdentify_NonsenseReturnsEmpty(t *testing.T) {
	c := NewCatalog()
	if got := c.Identify([]string{"zzz", "quantum flux"}); len(got) != 0 {
		t.Errorf("nonsense symptoms matched %v", names(got))
	}
}

func TestIdentify_TiesKeepCatalogueOrder(t *testing.T) {
	c := NewCatalog()
	got := c.Identify([]string{"yellowing"})
	if len(got) < 2 {
		t.Fatalf("expected several yellowing matches, got %d", len(got))
	}
	// All matches score 1, so they must appear in catalogue order.
	all := c.All()
	pos := make(map[string]int, len(all))
	for i, p := range all {
		pos[p.Name] = i
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].Name] > pos[got[i].Name] {
			t.Errorf("tie order broken: %s after %s", got[i-1].Name, got[i].Name)
		}
	}
}

func TestByCrop_Rice(t *testing.T) {
	c := NewCatalog()
	got := c.ByCrop("Rice")
	if len(got) == 0 {
		t.Fatal("no pests for Rice")
	}
	found := false
	for _, p := range got {
		if p.Name == "Brown Plant Hopper" {
			found = true
		}
	}
	if !found {
		t.Error("Brown Plant Hopper missing from Rice pests")
	}
}

func TestByCrop_CaseInsensitive(t *testing.T) {
	c := NewCatalog()
	if len(c.ByCrop("rice")) != len(c.ByCrop("RICE")) {
		t.Error("crop match should be case-insensitive")
	}
}

func TestByCrop_ExactNotSubstring(t *testing.T) {
	c := NewCatalog()
	// "Ric" is a prefix of "Rice" but must not match.
	if got := c.ByCrop("Ric"); len(got) != 0 {
		t.Errorf("prefix matched %v, want exact matching only", names(got))
	}
}

func TestByCrop_UnknownReturnsEmpty(t *testing.T) {
	c := NewCatalog()
	if got := c.ByCrop("quinoa"); len(got) != 0 {
		t.Errorf("unknown crop matched %v", names(got))
	}
}
