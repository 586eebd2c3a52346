package pipeline

import "testing"

func TestResolveLocality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"alias with landmark noise", "flat near vaishali nagar signal", "Vaishali Nagar"},
		{"market name only", "immovable property situated in jaipur city", Market},
		{"neither", "commercial shop in udaipur", ""},
		{"alias beats market fallback", "mansarovar, jaipur, rajasthan", "Mansarovar"},
		{"punctuation variant", "office at c-scheme", "C-Scheme"},
		{"spacing variant", "office at c scheme", "C-Scheme"},
		{"longer alias shadows shorter", "plot on new sanganer road", "New Sanganer Road"},
	}

	for _, tt := range tests {
		if got := ResolveLocality(tt.text); got != tt.want {
			t.Errorf("%s: ResolveLocality(%q) = %q; want %q", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestResolveLocalityMultipleFields(t *testing.T) {
	got := ResolveLocality("2BHK Flat", "Plot 14, Malviya Nagar", "")
	if got != "Malviya Nagar" {
		t.Errorf("ResolveLocality across fields = %q; want %q", got, "Malviya Nagar")
	}
}

func TestGeocodeFor(t *testing.T) {
	c, ok := GeocodeFor("Mansarovar")
	if !ok {
		t.Fatal("Mansarovar should be geocoded")
	}
	if c.Lat != 26.858 || c.Lng != 75.770 {
		t.Errorf("Mansarovar coords = (%v, %v); want (26.858, 75.770)", c.Lat, c.Lng)
	}

	if _, ok := GeocodeFor("Sanganer"); ok {
		t.Error("Sanganer is aliased but not geocoded; GeocodeFor should report false")
	}
}
