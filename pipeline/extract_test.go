package pipeline

import (
	"testing"
	"time"

	"jaipur-auction-scraper/models"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		none bool
	}{
		{"Reserve Price: ₹12,50,000", 1250000, false},
		{"₹45,00,000", 4500000, false},
		{"Rs. 8,75,000/-", 875000, false},
		{"EMD 50000", 50000, false},
		{"12,50,000.75", 1250000, false}, // paise truncated
		{"price on request", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got := ParseMoney(tt.raw)
		if tt.none {
			if got != nil {
				t.Errorf("ParseMoney(%q) = %d; want no value", tt.raw, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseMoney(%q) = no value; want %d", tt.raw, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("ParseMoney(%q) = %d; want %d", tt.raw, *got, tt.want)
		}
	}
}

func TestParseDateTimeDayFirst(t *testing.T) {
	got := ParseDateTime("12/11/2024 11:00 AM")
	if got == nil {
		t.Fatal("ParseDateTime returned no value for a valid date")
	}
	if got.Day() != 12 || got.Month() != time.November || got.Year() != 2024 {
		t.Errorf("date: got %v, want 12 Nov 2024", got)
	}
	if got.Hour() != 11 || got.Minute() != 0 {
		t.Errorf("time: got %02d:%02d, want 11:00", got.Hour(), got.Minute())
	}
}

func TestParseDateTimeUnparseable(t *testing.T) {
	for _, raw := range []string{"", "date to be announced", "--"} {
		if got := ParseDateTime(raw); got != nil {
			t.Errorf("ParseDateTime(%q) = %v; want no value", raw, got)
		}
	}
}

func TestClassifyPropertyType(t *testing.T) {
	tests := []struct {
		title string
		want  models.PropertyType
	}{
		{"3BHK Flat Vaishali Nagar", models.TypeFlat},
		{"Residential Apartment in Mansarovar", models.TypeFlat},
		{"Corner Plot on Ajmer Road", models.TypePlot},
		{"Independent Villa, Jagatpura", models.TypeHouse},
		{"Showroom Space MI Road Jaipur", models.TypeCommercial},
		{"Industrial Land at Sitapura", models.TypeCommercial}, // specific beats the land catch-all
		{"Agricultural Land near Amer", models.TypeLand},
		{"Immovable Property, Jaipur", models.TypeProperty},
	}

	for _, tt := range tests {
		if got := ClassifyPropertyType(tt.title); got != tt.want {
			t.Errorf("ClassifyPropertyType(%q) = %s; want %s", tt.title, got, tt.want)
		}
	}
}

func TestDetectBank(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"E-auction notice by SBI, Jaipur branch", "SBI"},
		{"State Bank of India possession notice", "State Bank of India"},
		{"Mortgaged to Central Bank of India", "Bank of India"}, // priority order, as published
		{"HDFC Bank Ltd auction", "HDFC"},
		{"No lender mentioned here", ""},
		{"IDBIX is not a bank token", ""}, // word boundary
	}

	for _, tt := range tests {
		if got := DetectBank(tt.text); got != tt.want {
			t.Errorf("DetectBank(%q) = %q; want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectBankCombinesTexts(t *testing.T) {
	got := DetectBank("3BHK Flat Vaishali Nagar", "secured creditor: Canara Bank")
	if got != "Canara Bank" {
		t.Errorf("DetectBank over title+body = %q; want %q", got, "Canara Bank")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  3BHK\t Flat \n Vaishali  Nagar ", "3BHK Flat Vaishali Nagar"},
		{"", ""},
		{"   ", ""},
		{"already clean", "already clean"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
