package services

import (
	"fmt"
	"sort"
	"strings"

	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/utils"
)

// InsightService computes and prints a market report over the final
// consolidated catalogue.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(listings []*models.Listing) *models.MarketReport {
	report := &models.MarketReport{
		ListingsByPortal:   make(map[string]int),
		ListingsByLocality: make(map[string]int),
		ListingsByBank:     make(map[string]int),
		ListingsByType:     make(map[models.PropertyType]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	var priced []*models.Listing
	for _, l := range listings {
		report.ListingsByPortal[l.SourcePortal]++
		report.ListingsByType[l.PropertyType]++
		if l.Coordinates != nil {
			report.GeocodedListings++
		}
		if l.Locality != "" {
			report.ListingsByLocality[l.Locality]++
		}
		if l.Bank != "" {
			report.ListingsByBank[l.Bank]++
		}
		if l.ReservePrice != nil && *l.ReservePrice > 0 {
			priced = append(priced, l)
		}
	}

	if len(priced) > 0 {
		report.MinReserve = *priced[0].ReservePrice
		report.MaxReserve = *priced[0].ReservePrice
		report.MostExpensive = priced[0]
		var total int64
		for _, l := range priced {
			rp := *l.ReservePrice
			total += rp
			if rp < report.MinReserve {
				report.MinReserve = rp
			}
			if rp > report.MaxReserve {
				report.MaxReserve = rp
				report.MostExpensive = l
			}
		}
		report.AverageReserve = float64(total) / float64(len(priced))
	}

	return report
}

func (s *InsightService) Print(r *models.MarketReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  JAIPUR AUCTION MARKET REPORT\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Listings in catalogue : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Printf("  Geocoded              : \033[1m%d\033[0m\n", r.GeocodedListings)
	for _, pc := range sortedCounts(r.ListingsByPortal) {
		fmt.Printf("  via %-18s : %d\n", pc.key, pc.count)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Reserve Price (₹)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AverageReserve > 0 {
		fmt.Printf("  Average : \033[1;32m%.0f\033[0m\n", r.AverageReserve)
		fmt.Printf("  Minimum : \033[1;32m%d\033[0m\n", r.MinReserve)
		fmt.Printf("  Maximum : \033[1;32m%d\033[0m\n", r.MaxReserve)
	} else {
		fmt.Printf("  No reserve price data\n")
	}
	fmt.Println()

	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Highest Reserve\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.MostExpensive.Title, 50))
		fmt.Printf("  Locality : %s\n", r.MostExpensive.Locality)
		fmt.Printf("  Reserve  : \033[1;31m₹%d\033[0m\n", *r.MostExpensive.ReservePrice)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Listings by Locality\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ListingsByLocality) == 0 {
		fmt.Printf("  No locality data\n")
	} else {
		for _, lc := range sortedCounts(r.ListingsByLocality) {
			bar := strings.Repeat("█", lc.count)
			fmt.Printf("  %-30s %s (%d)\n", truncate(lc.key, 28), bar, lc.count)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Listings by Lender\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ListingsByBank) == 0 {
		fmt.Printf("  No lender data\n")
	} else {
		for _, bc := range sortedCounts(r.ListingsByBank) {
			fmt.Printf("  %-30s %d\n", truncate(bc.key, 28), bc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders a count map descending by count, then by key so
// output is stable.
func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
