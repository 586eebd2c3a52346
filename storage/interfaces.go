package storage

import "jaipur-auction-scraper/models"

// CatalogueWriter is the interface any consolidated-catalogue backend
// must satisfy.
type CatalogueWriter interface {
	Write(listings []*models.Listing) error
	Close() error
}

// RawCandidateWriter is the interface for persisting unprocessed portal
// output before consolidation.
type RawCandidateWriter interface {
	WriteRaw(candidates []models.RawCandidate) error
	Close() error
}
