package pipeline

import "jaipur-auction-scraper/models"

// BackfillGeo sets coordinates on every listing whose locality is in the
// geocoded set and whose coordinates are still unset. Listings with an
// unknown locality, no locality, or coordinates already present are left
// untouched, so re-running on enriched data is a no-op.
func BackfillGeo(listings []*models.Listing) {
	for _, l := range listings {
		if l.Coordinates != nil || l.Locality == "" {
			continue
		}
		if c, ok := GeocodeFor(l.Locality); ok {
			coords := c
			l.Coordinates = &coords
		}
	}
}
