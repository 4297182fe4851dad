package scrapers

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
)

// Scraper defines the interface for all product scrapers
type Scraper interface {
	// CanScrape checks if the scraper can handle the given URL
	CanScrape(url string) bool
	// Platform reports the marketplace family the scraper parses
	Platform() models.Platform
	// ScrapeProduct fetches the page and parses the product details
	ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error)
	// Parse extracts product details from an already fetched page
	Parse(doc *goquery.Document, url string) *models.ProductData
}
