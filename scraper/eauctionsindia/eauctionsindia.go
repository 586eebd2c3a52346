// Package eauctionsindia scrapes the eauctionsindia.com city index for
// Jaipur bank-auction announcements.
package eauctionsindia

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
	baseURL = "https://www.eauctionsindia.com"
	portal  = "eauctionsindia"
)

// Adapter walks the paginated Jaipur listing index, one card per
// auction, and enriches each card from its detail page.
type Adapter struct {
	cfg     *config.Config
	logger  *utils.Logger
	retry   *utils.RetryConfig
	pool    *utils.WorkerPool
	visited *utils.URLSet
}

// New creates a ready-to-use eauctionsindia adapter.
func New(cfg *config.Config, logger *utils.Logger) *Adapter {
	return &Adapter{
		cfg:     cfg,
		logger:  logger,
		retry:   utils.NewRetryConfig(cfg.MaxRetries, logger),
		pool:    utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs),
		visited: utils.NewURLSet(),
	}
}

func (a *Adapter) Name() string { return portal }

// Fetch returns every candidate found on the index pages, stopping at
// the page cap or the first empty page.
func (a *Adapter) Fetch() ([]models.RawCandidate, error) {
	var out []models.RawCandidate

	for page := 1; page <= a.cfg.MaxPagesPerSource; page++ {
		url := fmt.Sprintf("%s/city/jaipur-auctions?page=%d", baseURL, page)

		var doc *goquery.Document
		err := a.retry.Do(fmt.Sprintf("eai-page-%d", page), func() error {
			var err error
			doc, err = scraper.FetchDocument(url)
			return err
		})
		if err != nil {
			a.logger.Warn("[eai] Page %d failed: %v", page, err)
			break
		}

		before := len(out)
		doc.Find("div.auction-card, div.property-card").Each(func(_ int, card *goquery.Selection) {
			link, _ := card.Find("a").First().Attr("href")
			if link == "" {
				return
			}
			if !strings.HasPrefix(link, "http") {
				link = baseURL + link
			}
			if !a.visited.Add(link) {
				return
			}

			out = append(out, models.RawCandidate{
				Title:        card.Find("h2, .auction-title").First().Text(),
				Address:      card.Find(".auction-address, .property-address").First().Text(),
				PriceText:    card.Find(".reserve-price").First().Text(),
				EMDText:      card.Find(".emd-amount").First().Text(),
				DateText:     card.Find(".auction-date").First().Text(),
				SourcePortal: portal,
				SourceURL:    link,
			})
		})

		if len(out) == before {
			break // past the last populated page
		}
		scraper.PoliteDelay(a.cfg.RateLimitMs)
	}

	a.enrich(out)

	a.logger.Info("[eai] Collected %d candidates", len(out))
	return out, nil
}

// enrich visits detail pages concurrently to fill fields the index cards
// leave blank. Detail failures degrade the record, never the run.
func (a *Adapter) enrich(candidates []models.RawCandidate) {
	for i := range candidates {
		c := &candidates[i]
		if c.SourceURL == "" {
			continue
		}
		if c.PriceText != "" && c.DateText != "" && c.Description != "" {
			continue
		}

		a.pool.Submit(func() {
			doc, err := scraper.FetchDocument(c.SourceURL)
			if err != nil {
				a.logger.Warn("[eai] Detail page failed for %s: %v", c.SourceURL, err)
				return
			}

			if c.PriceText == "" {
				c.PriceText = doc.Find(".detail-reserve-price, td.reserve-price").First().Text()
			}
			if c.EMDText == "" {
				c.EMDText = doc.Find(".detail-emd, td.emd").First().Text()
			}
			if c.DateText == "" {
				c.DateText = doc.Find(".detail-auction-date, td.auction-date").First().Text()
			}
			c.Description = doc.Find(".auction-description").First().Text()
		})
	}
	a.pool.Wait()
}
