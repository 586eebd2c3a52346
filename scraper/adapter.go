// Package scraper defines the portal adapter contract and the HTTP
// plumbing shared by the individual portal packages.
package scraper

import "jaipur-auction-scraper/models"

// Adapter is one auction portal. Fetch returns whatever candidates the
// portal yielded; adapters catch their own per-page fetch and parse
// errors and return partial results, so an empty slice and an error are
// both legitimate outcomes for a drifting or unreachable portal. The
// run loop treats either as "this portal contributed nothing" and keeps
// going with the rest.
type Adapter interface {
	Name() string
	Fetch() ([]models.RawCandidate, error)
}
