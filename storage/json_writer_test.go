package storage

import (
	"path/filepath"
	"testing"

	"jaipur-auction-scraper/models"
)

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "listings.json")

	price := int64(4500000)
	in := []*models.Listing{
		{
			ID:           "abc123",
			Title:        "3BHK Flat Vaishali Nagar",
			PropertyType: models.TypeFlat,
			Locality:     "Vaishali Nagar",
			Coordinates:  &models.Coordinates{Lat: 26.914, Lng: 75.748},
			ReservePrice: &price,
			SourceURL:    "https://a/x",
			SourcePortal: "eauctionsindia",
			Status:       models.StatusOpen,
		},
	}

	w := NewJSONWriter(path)
	if err := w.Write(in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadCatalogue(path)
	if err != nil {
		t.Fatalf("ReadCatalogue: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("read back %d listings, want 1", len(got))
	}

	l := got[0]
	if l.ID != "abc123" || l.Title != "3BHK Flat Vaishali Nagar" {
		t.Errorf("identity fields lost in round trip: %+v", l)
	}
	if l.ReservePrice == nil || *l.ReservePrice != 4500000 {
		t.Errorf("reserve price lost in round trip: %v", l.ReservePrice)
	}
	if l.Coordinates == nil || l.Coordinates.Lat != 26.914 {
		t.Errorf("coordinates lost in round trip: %v", l.Coordinates)
	}
}

func TestReadCatalogueMissingFile(t *testing.T) {
	if _, err := ReadCatalogue(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing catalogue file")
	}
}
