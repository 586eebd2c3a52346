// Package bankeauctions scrapes bankeauctions.com listing cards for the
// Jaipur market.
package bankeauctions

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
	baseURL = "https://www.bankeauctions.com"
	portal  = "bankeauctions"
)

// Adapter walks the paginated city search results.
type Adapter struct {
	cfg     *config.Config
	logger  *utils.Logger
	retry   *utils.RetryConfig
	visited *utils.URLSet
}

// New creates a ready-to-use bankeauctions adapter.
func New(cfg *config.Config, logger *utils.Logger) *Adapter {
	return &Adapter{
		cfg:     cfg,
		logger:  logger,
		retry:   utils.NewRetryConfig(cfg.MaxRetries, logger),
		visited: utils.NewURLSet(),
	}
}

func (a *Adapter) Name() string { return portal }

// Fetch collects one candidate per result card. The same property often
// appears on several result pages, so card links are tracked in a
// visited set and repeats skipped.
func (a *Adapter) Fetch() ([]models.RawCandidate, error) {
	var out []models.RawCandidate

	for page := 1; page <= a.cfg.MaxPagesPerSource; page++ {
		url := fmt.Sprintf("%s/Rajasthan/Jaipur?pn=%d", baseURL, page)

		var doc *goquery.Document
		err := a.retry.Do(fmt.Sprintf("bae-page-%d", page), func() error {
			var err error
			doc, err = scraper.FetchDocument(url)
			return err
		})
		if err != nil {
			a.logger.Warn("[bae] Page %d failed: %v", page, err)
			break
		}

		before := len(out)
		doc.Find("div.search-result-card").Each(func(_ int, card *goquery.Selection) {
			link, _ := card.Find("a.property-link").Attr("href")
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
				Title:        card.Find("h3.property-title").Text(),
				Address:      card.Find("p.property-address").Text(),
				Description:  card.Find("p.bank-name").Text(),
				PriceText:    card.Find("span.reserve-price-value").Text(),
				EMDText:      card.Find("span.emd-value").Text(),
				DateText:     card.Find("span.auction-date-value").Text(),
				SourcePortal: portal,
				SourceURL:    link,
			})
		})

		if len(out) == before {
			break
		}
		scraper.PoliteDelay(a.cfg.RateLimitMs)
	}

	a.logger.Info("[bae] Collected %d candidates", len(out))
	return out, nil
}
