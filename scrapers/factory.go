package scrapers

import (
	"strings"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/amazon"
	"github.com/socialboost/vision/scrapers/generic"
	"github.com/socialboost/vision/scrapers/mercadolivre"
	"github.com/socialboost/vision/scrapers/shopee"
)

// DetectPlatform classifies a product URL by substring
func DetectPlatform(url string) models.Platform {
	switch {
	case strings.Contains(url, "mercadolivre"), strings.Contains(url, "mercadolibre"):
		return models.PlatformMercadoLivre
	case strings.Contains(url, "shopee"):
		return models.PlatformShopee
	case strings.Contains(url, "amazon"):
		return models.PlatformAmazon
	default:
		return models.PlatformGeneric
	}
}

// GetScraper returns the scraper registered for the URL's platform.
// The generic scraper accepts any URL and is checked last.
func GetScraper(url string) Scraper {
	// Register scrapers here
	scrapers := []Scraper{
		mercadolivre.NewMercadoLivreScraper(),
		shopee.NewShopeeScraper(),
		amazon.NewAmazonScraper(),
	}

	for _, s := range scrapers {
		if s.CanScrape(url) {
			return s
		}
	}

	return generic.NewGenericScraper()
}
