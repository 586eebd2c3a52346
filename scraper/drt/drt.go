// Package drt scrapes auction notices published by the Debts Recovery
// Tribunal e-auction portal for the Jaipur bench.
package drt

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"jaipur-auction-scraper/config"
	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/scraper"
	"jaipur-auction-scraper/utils"
)

const (
	noticesURL = "https://drt.gov.in/front/eauction_notices.php?bench=jaipur"
	portal     = "drt"
)

// Adapter reads the DRT notice table. The portal is a single flat table,
// no pagination.
type Adapter struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
}

// New creates a ready-to-use DRT adapter.
func New(cfg *config.Config, logger *utils.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		logger: logger,
		retry:  utils.NewRetryConfig(cfg.MaxRetries, logger),
	}
}

func (a *Adapter) Name() string { return portal }

// Fetch parses the notice table. Column order on this portal has been
// stable for years: description, bank, reserve price, EMD, auction date.
func (a *Adapter) Fetch() ([]models.RawCandidate, error) {
	var doc *goquery.Document
	err := a.retry.Do("drt-notices", func() error {
		var err error
		doc, err = scraper.FetchDocument(noticesURL)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("drt: fetch notices: %w", err)
	}

	var out []models.RawCandidate
	doc.Find("table.auction-notices tbody tr, table#notices tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return // header or spacer row
		}

		link, _ := row.Find("a").First().Attr("href")
		out = append(out, models.RawCandidate{
			Title:        cells.Eq(0).Text(),
			Description:  cells.Eq(1).Text(),
			PriceText:    cells.Eq(2).Text(),
			EMDText:      cells.Eq(3).Text(),
			DateText:     cells.Eq(4).Text(),
			SourcePortal: portal,
			SourceURL:    absoluteURL(link),
		})
	})

	a.logger.Info("[drt] Collected %d candidates", len(out))
	return out, nil
}

func absoluteURL(link string) string {
	if link == "" {
		return noticesURL
	}
	if link[0] == '/' {
		return "https://drt.gov.in" + link
	}
	return link
}
