// Package mstc scrapes property lots from the MSTC e-commerce auction
// portal, filtered to the Jaipur region.
package mstc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jaipur-auction-scraper/config"
	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/scraper"
	"jaipur-auction-scraper/utils"
)

const (
	baseURL = "https://www.mstcecommerce.com"
	portal  = "mstc"
)

// Adapter reads the paginated lot listing for immovable property.
type Adapter struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
}

// New creates a ready-to-use MSTC adapter.
func New(cfg *config.Config, logger *utils.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		logger: logger,
		retry:  utils.NewRetryConfig(cfg.MaxRetries, logger),
	}
}

func (a *Adapter) Name() string { return portal }

// Fetch walks the lot pages up to the page cap. MSTC exposes a stable
// lot id per row; it is carried through as the external record id.
func (a *Adapter) Fetch() ([]models.RawCandidate, error) {
	var out []models.RawCandidate

	for page := 1; page <= a.cfg.MaxPagesPerSource; page++ {
		url := fmt.Sprintf("%s/auctionhome/ibapi/lots?region=jaipur&page=%d", baseURL, page)

		var doc *goquery.Document
		err := a.retry.Do(fmt.Sprintf("mstc-page-%d", page), func() error {
			var err error
			doc, err = scraper.FetchDocument(url)
			return err
		})
		if err != nil {
			a.logger.Warn("[mstc] Page %d failed: %v", page, err)
			break
		}

		before := len(out)
		doc.Find("tr.lot-row").Each(func(_ int, row *goquery.Selection) {
			lotID, _ := row.Attr("data-lot-id")
			link, _ := row.Find("a.lot-link").Attr("href")
			if link != "" && !strings.HasPrefix(link, "http") {
				link = baseURL + link
			}

			out = append(out, models.RawCandidate{
				ID:           lotID,
				Title:        row.Find("td.lot-description").Text(),
				Address:      row.Find("td.lot-location").Text(),
				PriceText:    row.Find("td.lot-reserve").Text(),
				EMDText:      row.Find("td.lot-emd").Text(),
				DateText:     row.Find("td.lot-auction-date").Text(),
				LocalityText: row.Find("td.lot-location").Text(),
				SourcePortal: portal,
				SourceURL:    link,
			})
		})

		if len(out) == before {
			break
		}
		scraper.PoliteDelay(a.cfg.RateLimitMs)
	}

	a.logger.Info("[mstc] Collected %d candidates", len(out))
	return out, nil
}
