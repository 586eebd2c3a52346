package pipeline

import (
	"strings"

	"jaipur-auction-scraper/models"
)

// Market is the fixed geographic scope of the catalogue. Listings that
// mention neither the market nor a known area are out of scope.
const Market = "Jaipur"

// colonyAlias maps one lower-cased free-text variant to its canonical
// area name. The table is a slice, not a map: aliases are scanned in
// this exact order, so longer variants shadow the shorter ones they
// contain ("new sanganer road" before "sanganer").
type colonyAlias struct {
	alias     string
	canonical string
}

var colonyAliases = []colonyAlias{
	{"vaishali nagar", "Vaishali Nagar"},
	{"queens road", "Queens Road"},
	{"ajmer road", "Ajmer Road"},
	{"chitrakoot", "Chitrakoot"},
	{"sodala", "Sodala"},
	{"jhotwara", "Jhotwara"},
	{"mansarovar", "Mansarovar"},
	{"new sanganer road", "New Sanganer Road"},
	{"pratap nagar", "Pratap Nagar"},
	{"sanganer", "Sanganer"},
	{"tonk road", "Tonk Road"},
	{"sitapura", "Sitapura"},
	{"jagatpura", "Jagatpura"},
	{"malviya nagar", "Malviya Nagar"},
	{"c-scheme", "C-Scheme"},
	{"c scheme", "C-Scheme"},
	{"bapu nagar", "Bapu Nagar"},
	{"ashok nagar", "Ashok Nagar"},
	{"mi road", "MI Road"},
	{"bani park", "Bani Park"},
	{"vidhyadhar nagar", "Vidhyadhar Nagar"},
	{"vki", "VKI"},
	{"lal kothi", "Lal Kothi"},
	{"jawahar nagar", "Jawahar Nagar"},
	{"durgapura", "Durgapura"},
	{"gopalpura", "Gopalpura"},
	{"amer", "Amer"},
	{"raja park", "Raja Park"},
	{"sikar road", "Sikar Road"},
	{"delhi road", "Delhi Road"},
	{"jln marg", "JLN Marg"},
}

// geocodes maps canonical area names to representative coordinates. Not
// every aliased area is geocoded; enrichment leaves the rest untouched.
var geocodes = map[string]models.Coordinates{
	"Vaishali Nagar":   {Lat: 26.914, Lng: 75.748},
	"Mansarovar":       {Lat: 26.858, Lng: 75.770},
	"Ajmer Road":       {Lat: 26.885, Lng: 75.730},
	"Queens Road":      {Lat: 26.908, Lng: 75.760},
	"C-Scheme":         {Lat: 26.912, Lng: 75.809},
	"Jagatpura":        {Lat: 26.822, Lng: 75.836},
	"Pratap Nagar":     {Lat: 26.788, Lng: 75.824},
	"Sodala":           {Lat: 26.898, Lng: 75.787},
	"Bani Park":        {Lat: 26.928, Lng: 75.797},
	"Jhotwara":         {Lat: 26.955, Lng: 75.740},
	"Vidhyadhar Nagar": {Lat: 26.954, Lng: 75.784},
	"Tonk Road":        {Lat: 26.861, Lng: 75.802},
	"Malviya Nagar":    {Lat: 26.853, Lng: 75.815},
	"Amer":             {Lat: 26.985, Lng: 75.851},
	"Raja Park":        {Lat: 26.902, Lng: 75.829},
}

// ResolveLocality scans the supplied texts for a known area alias and
// returns the canonical area name. Matching is substring-based on the
// concatenated lower-cased blob: portal text runs area and landmark
// phrases together too irregularly for token matching, and a locality
// tag is advisory, so the recall is worth the small false-positive risk.
// An alias match always beats the bare market-name fallback; the market
// name alone resolves to Market; neither resolves to "".
func ResolveLocality(texts ...string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			parts = append(parts, Normalize(t))
		}
	}
	blob := strings.ToLower(strings.Join(parts, " "))

	for _, ca := range colonyAliases {
		if strings.Contains(blob, ca.alias) {
			return ca.canonical
		}
	}
	if strings.Contains(blob, strings.ToLower(Market)) {
		return Market
	}
	return ""
}

// GeocodeFor returns the registered coordinates for a canonical area
// name, if that area is in the geocoded set.
func GeocodeFor(locality string) (models.Coordinates, bool) {
	c, ok := geocodes[locality]
	return c, ok
}
