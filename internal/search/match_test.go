package search

import (
	"testing"

	"github.com/wichananm65/plant-shop/internal/product"
)

func TestMatches(t *testing.T) {
	rose := Fields{Name: "Rose Plant", CategoryTag: "outdoor", AltText: "Outdoor Plant"}

	cases := []struct {
		query string
		want  bool
	}{
		{"rose", true},
		{"zzz", false},
		{"ROSE", true},
		{"outdo", true},    // category tag substring
		{"door pla", true}, // alt text substring across words
		{"  rose   plant ", true},
		{"rosé", true},
		{"plant rose", false}, // substring, not token match
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := Matches(tc.query, rose); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestMatches_AccentedCatalogText(t *testing.T) {
	f := Fields{Name: "Café Palm", CategoryTag: "indoor"}
	if !Matches("cafe", f) {
		t.Fatalf("unaccented query should match accented name")
	}
}

func TestFilter_CatalogSucculents(t *testing.T) {
	cands := make([]recordCandidate, 0, len(product.DefaultCatalog))
	for _, p := range product.DefaultCatalog {
		cands = append(cands, recordCandidate{p: p})
	}

	got := Filter("succulent", cands)
	if len(got) != 2 {
		t.Fatalf("expected 2 succulent records, got %d", len(got))
	}
	if got[0].p.Name != "Echeveria Succulent" || got[1].p.Name != "Aloe Vera" {
		t.Fatalf("unexpected matches or order: %q, %q", got[0].p.Name, got[1].p.Name)
	}
	for _, c := range got {
		if c.p.Alt != "Succulent" {
			t.Fatalf("every match should carry alt text Succulent, got %q", c.p.Alt)
		}
	}

	// "seed" hits the tag, alt and two names; order follows the table
	seeds := Filter("seed", cands)
	if len(seeds) != 3 || seeds[0].p.Name != "CELOSIA-SUMMER SEEDS" || seeds[2].p.Name != "COCONUT BULB" {
		t.Fatalf("unexpected seed matches %+v", seeds)
	}
}
