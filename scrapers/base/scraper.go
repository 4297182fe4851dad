package base

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// UserAgent is sent on every product page and image request
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// FetchTimeout bounds a single product page request
const FetchTimeout = 10 * time.Second

// BaseScraper handles common scraping logic
type BaseScraper struct {
	Client *http.Client
	// Headless enables the chromedp and selenium strategies after plain HTTP
	Headless         bool
	ChromeDriverPath string

	// strategies overrides the headless chain; nil means chromedp then selenium
	strategies []fetchStrategy
}

// fetchStrategy is one way of turning a URL into a document
type fetchStrategy struct {
	name  string
	fetch func(ctx context.Context, url string) (*goquery.Document, error)
}

// NewBaseScraper creates a new BaseScraper instance
func NewBaseScraper() *BaseScraper {
	return &BaseScraper{
		Client: &http.Client{
			Timeout:   FetchTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Headless:         config.ScraperHeadlessFallback,
		ChromeDriverPath: config.ChromeDriverPath,
	}
}

func (b *BaseScraper) headlessStrategies() []fetchStrategy {
	if b.strategies != nil {
		return b.strategies
	}
	return []fetchStrategy{
		{name: "ChromeDP", fetch: b.FetchDocumentChromeDP},
		{name: "Selenium", fetch: func(_ context.Context, url string) (*goquery.Document, error) {
			return b.FetchDocumentSelenium(url)
		}},
	}
}

// FetchDocument fetches the URL over HTTP and, when headless fallbacks are enabled,
// retries through a real browser if the fetch fails or the page fails the validator.
// With headless disabled the HTTP document is returned as is.
func (b *BaseScraper) FetchDocument(ctx context.Context, url string, validator func(*goquery.Document) bool) (*goquery.Document, error) {
	valid := func(doc *goquery.Document) bool {
		return validator == nil || validator(doc)
	}

	httpDoc, err := b.FetchDocumentHTTP(ctx, url)
	if err == nil && (!b.Headless || valid(httpDoc)) {
		return httpDoc, nil
	}
	if !b.Headless {
		return nil, err
	}
	if err != nil {
		log.Printf("[BaseScraper] HTTP failed for %s: %v", url, err)
	} else {
		log.Printf("[BaseScraper] HTTP page for %s failed validation", url)
	}

	for _, s := range b.headlessStrategies() {
		if ctx.Err() != nil {
			break
		}
		log.Printf("[BaseScraper] Trying %s: %s", s.name, url)
		doc, err := s.fetch(ctx, url)
		if err != nil {
			log.Printf("[BaseScraper] %s failed: %v", s.name, err)
			continue
		}
		if valid(doc) {
			return doc, nil
		}
	}

	// A partial page still beats the degraded record
	if httpDoc != nil {
		return httpDoc, nil
	}
	return nil, fmt.Errorf("all strategies failed for %s", url)
}

// FetchDocumentHTTP fetches the URL and returns a GoQuery document via standard HTTP
func (b *BaseScraper) FetchDocumentHTTP(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	res, err := b.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}

// MetaContent returns the content attribute of the first meta tag matching selector
func MetaContent(doc *goquery.Document, selector string) string {
	return doc.Find(selector).First().AttrOr("content", "")
}

// FirstNonEmpty returns the first non-empty value
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
