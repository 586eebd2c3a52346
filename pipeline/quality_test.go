package pipeline

import (
	"testing"
	"time"

	"jaipur-auction-scraper/models"
)

func price(v int64) *int64 { return &v }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestQualityFilterDropsJunkTitles(t *testing.T) {
	in := []*models.Listing{
		{Title: "Welcome Guest", Locality: "Mansarovar", ReservePrice: price(500000)},
		{Title: "Please register to continue", Locality: "Mansarovar", ReservePrice: price(500000)},
		{Title: "Short one", Locality: "Mansarovar", ReservePrice: price(500000)}, // 9 chars
	}

	if got := QualityFilter(in); len(got) != 0 {
		t.Errorf("expected all junk titles dropped, kept %d", len(got))
	}
}

func TestQualityFilterKeepsValidWithoutDate(t *testing.T) {
	in := []*models.Listing{
		{Title: "2BHK Flat Mansarovar", Locality: "Mansarovar", ReservePrice: price(500000)},
	}

	got := QualityFilter(in)
	if len(got) != 1 {
		t.Fatalf("valid listing with price but no date should survive, kept %d", len(got))
	}
}

func TestQualityFilterDropsOutOfMarket(t *testing.T) {
	in := []*models.Listing{
		{Title: "Residential Flat in Udaipur City", ReservePrice: price(900000)},
	}

	if got := QualityFilter(in); len(got) != 0 {
		t.Errorf("out-of-market listing with no locality should be dropped, kept %d", len(got))
	}
}

func TestQualityFilterDropsZeroSignal(t *testing.T) {
	in := []*models.Listing{
		{Title: "Spacious House near Bani Park", Locality: "Bani Park"},
	}

	if got := QualityFilter(in); len(got) != 0 {
		t.Errorf("listing with neither price nor date should be dropped, kept %d", len(got))
	}
}

func TestQualityFilterMarketMentionWithoutLocality(t *testing.T) {
	in := []*models.Listing{
		{Title: "Immovable property auction, Jaipur", AuctionDate: date("2024-11-12 11:00")},
	}

	got := QualityFilter(in)
	if len(got) != 1 {
		t.Fatalf("market mention in title should satisfy the location check, kept %d", len(got))
	}
}

func TestQualityFilterPreservesOrder(t *testing.T) {
	in := []*models.Listing{
		{Title: "First Flat in Jaipur City", ReservePrice: price(1)},
		{Title: "Welcome Guest"},
		{Title: "Second House in Jaipur City", ReservePrice: price(2)},
	}

	got := QualityFilter(in)
	if len(got) != 2 {
		t.Fatalf("kept %d, want 2", len(got))
	}
	if *got[0].ReservePrice != 1 || *got[1].ReservePrice != 2 {
		t.Error("surviving order must match input order")
	}
}
