// Package pipeline turns heterogeneous per-portal auction records into a
// single deduplicated, quality-filtered, geo-enriched catalogue for the
// Jaipur market. Every stage is synchronous and stateless between runs;
// the alias, lender, and junk tables are read-only package data.
package pipeline

import (
	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/utils"
)

// Pipeline consolidates the unioned output of all portal adapters.
type Pipeline struct {
	logger *utils.Logger
}

// New creates a consolidation pipeline.
func New(logger *utils.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Consolidate runs extraction, quality filtering, deduplication, and geo
// backfill over the raw candidates, in that fixed order, and returns the
// final catalogue. Input order is preserved through every stage, so each
// adapter's own ordering (and adapter registration order across
// adapters) decides which duplicate survives. Running twice on the same
// input yields an identical catalogue with identical identity keys.
func (p *Pipeline) Consolidate(raw []models.RawCandidate) []*models.Listing {
	listings := make([]*models.Listing, 0, len(raw))
	for _, r := range raw {
		listings = append(listings, Extract(r))
	}

	kept := QualityFilter(listings)
	deduped := Deduplicate(kept)
	BackfillGeo(deduped)

	if p.logger != nil {
		p.logger.Info("[pipeline] %d raw → %d listings (junk/out-of-market: %d, duplicates: %d)",
			len(raw), len(deduped), len(listings)-len(kept), len(kept)-len(deduped))
	}
	return deduped
}

// Extract builds a canonical Listing from one raw candidate. Every field
// extractor degrades to "no value" on malformed input, so extraction is
// total: one Listing out per candidate in, always. A portal-assigned id
// is honored verbatim and becomes the identity used for deduplication.
func Extract(r models.RawCandidate) *models.Listing {
	l := &models.Listing{
		Title:        Normalize(r.Title),
		PropertyType: ClassifyPropertyType(r.Title),
		Address:      Normalize(r.Address),
		Locality:     ResolveLocality(r.Title, r.Address, r.LocalityText),
		ReservePrice: ParseMoney(r.PriceText),
		EMD:          ParseMoney(r.EMDText),
		AuctionDate:  ParseDateTime(r.DateText),
		Bank:         DetectBank(r.Title, r.Description),
		SourceURL:    r.SourceURL,
		SourcePortal: r.SourcePortal,
		Status:       models.StatusOpen,
	}

	if r.ID != "" {
		l.ID = r.ID
	} else {
		l.ID = IdentityKey(r.Title, r.DateText)
	}
	return l
}
