package pipeline

import (
	"regexp"
	"strings"

	"jaipur-auction-scraper/models"
)

// minTitleLength is the shortest normalized title that can plausibly
// describe a property; anything shorter is navigation text.
const minTitleLength = 10

// junkTitleRegexps match navigational noise the portals emit as if it
// were a listing: greeting banners, registration prompts, section
// headers. Matched against the normalized lower-cased title.
var junkTitleRegexps = []*regexp.Regexp{
	regexp.MustCompile(`welcome guest`),
	regexp.MustCompile(`please register`),
	regexp.MustCompile(`judgments?\b`),
	regexp.MustCompile(`rules\b.*regulations`),
	regexp.MustCompile(`information desk`),
	regexp.MustCompile(`gallery`),
	regexp.MustCompile(`services\b`),
}

// looksJunky reports whether a title is site furniture rather than an
// auction announcement. Junk titles disqualify a record outright.
func looksJunky(title string) bool {
	t := normLower(title)
	if len(t) < minTitleLength {
		return true
	}
	for _, re := range junkTitleRegexps {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// QualityFilter returns the listings that clear all three checks: a
// non-junk title, an in-market location (the market mentioned anywhere
// in title/address/locality, or a locality already resolved), and at
// least one of reserve price or auction date extracted. Records with no
// financial or temporal signal are noise even when otherwise valid.
// Input order is preserved.
func QualityFilter(listings []*models.Listing) []*models.Listing {
	out := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if looksJunky(l.Title) {
			continue
		}
		blob := normLower(l.Title + " " + l.Address + " " + l.Locality)
		if !strings.Contains(blob, strings.ToLower(Market)) && l.Locality == "" {
			continue
		}
		if l.ReservePrice == nil && l.AuctionDate == nil {
			continue
		}
		out = append(out, l)
	}
	return out
}
