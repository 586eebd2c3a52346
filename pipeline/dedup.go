package pipeline

import (
	"time"

	"jaipur-auction-scraper/models"
)

// Deduplicate collapses listings sharing an identity key down to one
// survivor each, in first-seen order. First seen wins outright: later
// duplicates never overwrite survivor fields, so adapter registration
// order is the tie-break. No cross-source field merging is attempted —
// conflicting sources for the same auction are rare, and a wrong merge
// is worse than a slightly less complete record.
func Deduplicate(listings []*models.Listing) []*models.Listing {
	seen := make(map[string]struct{}, len(listings))
	out := make([]*models.Listing, 0, len(listings))

	for _, l := range listings {
		if l.ID == "" {
			l.ID = IdentityKey(l.Title, formatDate(l.AuctionDate))
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}

// formatDate renders an already-parsed auction date back into the
// normalized text form, so keyless listings still fingerprint stably.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
