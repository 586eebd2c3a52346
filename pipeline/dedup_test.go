package pipeline

import (
	"testing"

	"jaipur-auction-scraper/models"
)

func TestIdentityKeyDeterministic(t *testing.T) {
	a := IdentityKey("3BHK Flat Vaishali Nagar", "12/11/2024 11:00 AM")
	b := IdentityKey("3BHK  Flat   Vaishali Nagar", "12/11/2024  11:00 AM") // whitespace noise
	c := IdentityKey("3bhk flat vaishali nagar", "12/11/2024 11:00 am")     // case noise

	if a != b || a != c {
		t.Error("identity key must be stable under whitespace and case noise")
	}
	if len(a) != 40 {
		t.Errorf("key length = %d; want 40 hex chars", len(a))
	}

	if IdentityKey("2BHK Flat Vaishali Nagar", "12/11/2024 11:00 AM") == a {
		t.Error("distinct titles must not collide")
	}
}

func TestDeduplicateFirstSeenWins(t *testing.T) {
	key := IdentityKey("3BHK Flat Vaishali Nagar", "12/11/2024 11:00 AM")
	in := []*models.Listing{
		{ID: key, Title: "3BHK Flat Vaishali Nagar", SourcePortal: "eauctionsindia", SourceURL: "https://a/x"},
		{ID: key, Title: "3BHK Flat Vaishali Nagar", SourcePortal: "bankeauctions", SourceURL: "https://a/x"},
	}

	got := Deduplicate(in)
	if len(got) != 1 {
		t.Fatalf("deduped to %d, want 1", len(got))
	}
	if got[0].SourcePortal != "eauctionsindia" {
		t.Errorf("survivor portal = %q; want first-seen %q", got[0].SourcePortal, "eauctionsindia")
	}
}

func TestDeduplicateHonorsExternalID(t *testing.T) {
	in := []*models.Listing{
		{ID: "portal-42", Title: "2BHK Flat Sodala Jaipur"},
		{ID: "portal-42", Title: "Completely different title"},
	}

	got := Deduplicate(in)
	if len(got) != 1 {
		t.Fatalf("records sharing an external id must collapse, got %d", len(got))
	}
	if got[0].Title != "2BHK Flat Sodala Jaipur" {
		t.Error("first-seen record must survive")
	}
}

func TestDeduplicateAssignsMissingKeys(t *testing.T) {
	in := []*models.Listing{
		{Title: "Corner Plot Ajmer Road"},
		{Title: "Corner Plot Ajmer Road"},
	}

	got := Deduplicate(in)
	if len(got) != 1 {
		t.Fatalf("keyless identical listings must collapse, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Error("survivor must carry an assigned identity key")
	}
}
