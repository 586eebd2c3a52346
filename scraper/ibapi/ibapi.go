// Package ibapi scrapes the Indian Banks Auctions (IBAPI) portal. The
// portal renders its listing grid with JavaScript, so extraction runs in
// a headless browser. Selector drift here is routine; the adapter is
// best-effort and may legitimately contribute zero records.
package ibapi

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"jaipur-auction-scraper/config"
	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/utils"
)

const (
	searchURL = "https://www.ibapi.in/sale_info_home.aspx?city=jaipur"
	portal    = "ibapi"
)

// Adapter drives a headless Chrome session over the IBAPI search page.
type Adapter struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
}

// New creates a ready-to-use IBAPI adapter.
func New(cfg *config.Config, logger *utils.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		logger: logger,
		retry:  utils.NewRetryConfig(cfg.MaxRetries, logger),
	}
}

func (a *Adapter) Name() string { return portal }

type cardData struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	Price   string `json:"price"`
	EMD     string `json:"emd"`
	Date    string `json:"date"`
	Bank    string `json:"bank"`
	URL     string `json:"url"`
}

// Fetch renders the search page and pulls whatever property cards the
// grid produced.
func (a *Adapter) Fetch() ([]models.RawCandidate, error) {
	chromeBin := a.findChromeBinary()
	if chromeBin == "" {
		a.logger.Warn("[ibapi] No Chrome/Chromium binary found — skipping portal")
		return nil, nil
	}
	a.logger.Info("[ibapi] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.ExecPath(chromeBin),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelSilent()

	var cards []cardData
	err := a.retry.Do("ibapi-search", func() error {
		ctx, cancel := chromedp.NewContext(silentCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, 90*time.Second)
		defer cancelTimeout()

		return chromedp.Run(ctx,
			chromedp.Navigate(searchURL),
			chromedp.Sleep(6*time.Second),
			chromedp.Evaluate(`
				(function() {
					var results = [];
					var cards = document.querySelectorAll('div.property-card, div[id*="dvProperty"]');
					for (var i = 0; i < cards.length; i++) {
						var card = cards[i];
						var pick = function(sel) {
							var el = card.querySelector(sel);
							return el ? el.innerText.trim() : '';
						};
						var linkEl = card.querySelector('a[href*="PropertyDetail"]') || card.querySelector('a');
						results.push({
							title:   pick('.property-title, h4'),
							address: pick('.property-address, .address'),
							price:   pick('.reserve-price, .rp-value'),
							emd:     pick('.emd, .emd-value'),
							date:    pick('.auction-date, .date-value'),
							bank:    pick('.bank-name'),
							url:     linkEl ? linkEl.href : ''
						});
					}
					return results;
				})()
			`, &cards),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("ibapi: headless extract: %w", err)
	}

	out := make([]models.RawCandidate, 0, len(cards))
	for _, c := range cards {
		if c.Title == "" && c.URL == "" {
			continue
		}
		url := c.URL
		if url == "" {
			url = searchURL
		}
		out = append(out, models.RawCandidate{
			Title:        c.Title,
			Address:      c.Address,
			Description:  c.Bank,
			PriceText:    c.Price,
			EMDText:      c.EMD,
			DateText:     c.Date,
			SourcePortal: portal,
			SourceURL:    url,
		})
	}

	a.logger.Info("[ibapi] Collected %d candidates", len(out))
	return out, nil
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func (a *Adapter) findChromeBinary() string {
	if a.cfg.ChromeBin != "" {
		return a.cfg.ChromeBin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
