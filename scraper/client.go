package scraper

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (compatible; JaipurAuctionBot/1.2)"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FetchDocument GETs a page with the shared bot headers and parses the
// response into a goquery document.
func FetchDocument(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("scraper: build request %q: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-IN,en;q=0.8")

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper: get %q: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper: get %q: status %d", url, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse %q: %w", url, err)
	}
	return doc, nil
}

// PoliteDelay sleeps the configured gap plus up to 700ms of jitter
// between page fetches, so paginated crawls don't hammer a portal at a
// fixed rhythm.
func PoliteDelay(rateMs int) {
	jitter := time.Duration(rand.Intn(700)) * time.Millisecond
	time.Sleep(time.Duration(rateMs)*time.Millisecond + jitter)
}
