package models

import "time"

// PropertyType is the closed classification of auctioned properties.
type PropertyType string

const (
	TypeFlat       PropertyType = "Flat"
	TypePlot       PropertyType = "Plot"
	TypeHouse      PropertyType = "House"
	TypeCommercial PropertyType = "Commercial"
	TypeLand       PropertyType = "Land"
	TypeProperty   PropertyType = "Property" // unclassified
)

// StatusOpen is the lifecycle tag every listing carries at creation.
// Closing and expiry are handled downstream of this system.
const StatusOpen = "Open"

// RawCandidate is an unconsolidated record straight out of a portal
// adapter. Only Title and SourceURL are reliably present; everything
// else is free text the pipeline may or may not manage to extract from.
type RawCandidate struct {
	ID           string // portal-assigned id, honored verbatim when present
	Title        string
	Address      string
	Description  string
	PriceText    string
	EMDText      string
	DateText     string
	LocalityText string
	SourcePortal string
	SourceURL    string
}

// Coordinates is a geocoded point for a canonical locality.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing is the canonical, consolidated auction record. Optional scalar
// fields are pointers so "missing" and "zero" stay distinguishable.
type Listing struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	PropertyType PropertyType `json:"property_type"`
	Address      string       `json:"address,omitempty"`
	Locality     string       `json:"locality,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	ReservePrice *int64       `json:"reserve_price,omitempty"`
	EMD          *int64       `json:"emd,omitempty"`
	AuctionDate  *time.Time   `json:"auction_date,omitempty"`
	Bank         string       `json:"bank,omitempty"`
	SourceURL    string       `json:"source_url"`
	SourcePortal string       `json:"source_portal"`
	Status       string       `json:"status"`
}

// MarketReport holds the computed analytics over the final catalogue.
type MarketReport struct {
	TotalListings      int
	GeocodedListings   int
	ListingsByPortal   map[string]int
	ListingsByLocality map[string]int
	ListingsByBank     map[string]int
	ListingsByType     map[PropertyType]int
	AverageReserve     float64
	MinReserve         int64
	MaxReserve         int64
	MostExpensive      *Listing
}
