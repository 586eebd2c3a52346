package pipeline

import (
	"testing"

	"jaipur-auction-scraper/models"
)

func crossPortalCandidates() []models.RawCandidate {
	return []models.RawCandidate{
		{
			Title:        "3BHK Flat Vaishali Nagar",
			PriceText:    "₹45,00,000",
			DateText:     "12/11/2024 11:00 AM",
			SourcePortal: "eauctionsindia",
			SourceURL:    "https://a/x",
		},
		{
			// Same auction mirrored on another portal: identical title and
			// date text, portal-specific URL.
			Title:        "3BHK Flat Vaishali Nagar",
			PriceText:    "₹45,00,000",
			DateText:     "12/11/2024 11:00 AM",
			SourcePortal: "bankeauctions",
			SourceURL:    "https://b/x",
		},
	}
}

func TestConsolidateEndToEnd(t *testing.T) {
	p := New(nil)
	got := p.Consolidate(crossPortalCandidates())

	if len(got) != 1 {
		t.Fatalf("cross-portal mirror must collapse to 1 listing, got %d", len(got))
	}

	l := got[0]
	if l.PropertyType != models.TypeFlat {
		t.Errorf("property type = %s; want Flat", l.PropertyType)
	}
	if l.ReservePrice == nil || *l.ReservePrice != 4500000 {
		t.Errorf("reserve price = %v; want 4500000", l.ReservePrice)
	}
	if l.Locality != "Vaishali Nagar" {
		t.Errorf("locality = %q; want %q", l.Locality, "Vaishali Nagar")
	}
	if l.Coordinates == nil {
		t.Fatal("coordinates must be backfilled for a geocoded locality")
	}
	if l.SourcePortal != "eauctionsindia" {
		t.Errorf("survivor portal = %q; want first-seen %q", l.SourcePortal, "eauctionsindia")
	}
	if l.Status != models.StatusOpen {
		t.Errorf("status = %q; want %q", l.Status, models.StatusOpen)
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	p := New(nil)

	first := p.Consolidate(crossPortalCandidates())
	second := p.Consolidate(crossPortalCandidates())

	if len(first) != len(second) {
		t.Fatalf("run sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("listing %d: identity key changed across runs (%s vs %s)",
				i, first[i].ID, second[i].ID)
		}
	}
}

func TestConsolidateIsolatesJunkFromValid(t *testing.T) {
	raw := append(crossPortalCandidates(),
		models.RawCandidate{Title: "Welcome Guest", SourcePortal: "drt", SourceURL: "https://drt/nav"},
		models.RawCandidate{
			Title:        "Warehouse Godown, Sitapura Industrial Area, Jaipur",
			PriceText:    "Rs. 1,20,00,000",
			SourcePortal: "mstc",
			SourceURL:    "https://mstc/7",
		},
	)

	p := New(nil)
	got := p.Consolidate(raw)
	if len(got) != 2 {
		t.Fatalf("got %d listings, want 2 (mirror collapsed, junk dropped)", len(got))
	}
	if got[1].PropertyType != models.TypeCommercial {
		t.Errorf("warehouse listing type = %s; want Commercial", got[1].PropertyType)
	}
}

func TestBackfillGeo(t *testing.T) {
	known := &models.Listing{Title: "Flat", Locality: "Mansarovar"}
	unknown := &models.Listing{Title: "Flat", Locality: "Sanganer"}
	none := &models.Listing{Title: "Flat"}

	BackfillGeo([]*models.Listing{known, unknown, none})

	if known.Coordinates == nil {
		t.Fatal("Mansarovar listing should get coordinates")
	}
	if known.Coordinates.Lat != 26.858 || known.Coordinates.Lng != 75.770 {
		t.Errorf("Mansarovar coords = %+v; want (26.858, 75.770)", *known.Coordinates)
	}
	if unknown.Coordinates != nil {
		t.Error("unregistered locality must stay without coordinates")
	}
	if none.Coordinates != nil {
		t.Error("listing without locality must stay without coordinates")
	}
}

func TestBackfillGeoIdempotent(t *testing.T) {
	l := &models.Listing{Title: "Flat", Locality: "Mansarovar"}
	BackfillGeo([]*models.Listing{l})
	first := l.Coordinates

	BackfillGeo([]*models.Listing{l})
	if l.Coordinates != first {
		t.Error("re-running enrichment must not touch already-set coordinates")
	}
}

func TestExtractHonorsExternalID(t *testing.T) {
	l := Extract(models.RawCandidate{
		ID:        "portal-99",
		Title:     "2BHK Flat Gopalpura Jaipur",
		PriceText: "₹22,00,000",
		SourceURL: "https://a/99",
	})
	if l.ID != "portal-99" {
		t.Errorf("external id = %q; want honored verbatim", l.ID)
	}
}
