package matching

import (
	"strings"
	"testing"

	"therapist-match/internal/domain/therapist"
)

func catalogIDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Therapist.ID)
	}
	return ids
}

func TestRank_AnxietyNeedsRankAnxietySpecialistFirst(t *testing.T) {
	catalog := therapist.DemoCatalog()
	matches := Rank("I have been dealing with anxiety and panic attacks at work", catalog)

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Therapist.ID != catalog[0].ID {
		t.Fatalf("expected anxiety specialist first, got %s", matches[0].Therapist.ID)
	}
	if matches[0].Reason == "" {
		t.Fatalf("expected non-empty reason")
	}
	if !strings.Contains(strings.ToLower(matches[0].Reason), "anxiety") {
		t.Fatalf("expected reason to mention anxiety expertise, got %q", matches[0].Reason)
	}
}

func TestRank_IdentityNeedsIncludeLGBTQSpecialist(t *testing.T) {
	catalog := therapist.DemoCatalog()
	matches := Rank("Looking for support around my gender identity", catalog)

	found := false
	for _, m := range matches {
		if m.Therapist.ID == catalog[1].ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected LGBTQ+ specialist in matches, got %v", catalogIDs(matches))
	}
}

func TestRank_Deterministic(t *testing.T) {
	catalog := therapist.DemoCatalog()
	needs := "stress at work and problems in my marriage"

	first := catalogIDs(Rank(needs, catalog))
	for i := 0; i < 5; i++ {
		again := catalogIDs(Rank(needs, catalog))
		if len(again) != len(first) {
			t.Fatalf("non-deterministic result length: %v vs %v", first, again)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("non-deterministic order: %v vs %v", first, again)
			}
		}
	}
}

func TestRank_NoBandMatchPadsInCatalogOrder(t *testing.T) {
	catalog := therapist.DemoCatalog()
	matches := Rank("I just want to talk to someone", catalog)

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, m := range matches {
		if m.Therapist.ID != catalog[i].ID {
			t.Fatalf("expected catalog order padding, got %v", catalogIDs(matches))
		}
		if m.Reason == "" {
			t.Fatalf("expected generic reason at index %d", i)
		}
	}
}

func TestRank_MultipleBandsPreserveBandOrder(t *testing.T) {
	catalog := therapist.DemoCatalog()
	matches := Rank("anxiety about coming out, identity questions, and family conflict", catalog)

	ids := catalogIDs(matches)
	want := []string{catalog[0].ID, catalog[1].ID, catalog[2].ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected band order %v, got %v", want, ids)
		}
	}
}

func TestRank_TruncatesToThree(t *testing.T) {
	catalog := append(therapist.DemoCatalog(), therapist.Therapist{ID: "extra", Name: "Dr. Extra"})
	matches := Rank("anxiety", catalog)

	if len(matches) != 3 {
		t.Fatalf("expected truncation to 3, got %d", len(matches))
	}
}

func TestRank_ShortCatalogExhausts(t *testing.T) {
	catalog := therapist.DemoCatalog()[:2]
	matches := Rank("nothing in particular", catalog)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches from 2-entry catalog, got %d", len(matches))
	}
}
