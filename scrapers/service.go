package scrapers

import (
	"context"
	"log"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/utils"
)

// FailureDescription is used when a product page could not be read at all
const FailureDescription = "Não foi possível extrair informações do site"

// Service scrapes product URLs through the platform scrapers
type Service struct {
	lookup func(url string) Scraper
}

// NewService creates a Service backed by GetScraper
func NewService() *Service {
	return &Service{lookup: GetScraper}
}

// Scrape runs the platform scraper and surfaces fetch failures
func (s *Service) Scrape(ctx context.Context, url string) (*models.ProductData, error) {
	return s.lookup(url).ScrapeProduct(ctx, url)
}

// ScrapeProduct never reports fetch or parse failures. A page that could not be
// read yields the degraded generic record instead. The only error returned is
// the context's own, when it was cancelled.
func (s *Service) ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error) {
	product, err := s.Scrape(ctx, url)
	if err == nil {
		utils.ScrapesTotal.WithLabelValues(string(product.Platform), "ok").Inc()
		return product, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	log.Printf("[Scraper] Error scraping %s: %v", url, err)
	utils.ScrapesTotal.WithLabelValues(string(DetectPlatform(url)), "degraded").Inc()
	return FailureRecord(url), nil
}

// FailureRecord is the product returned when scraping fails
func FailureRecord(url string) *models.ProductData {
	return &models.ProductData{
		Title:       "Produto",
		Description: FailureDescription,
		Images:      []string{},
		Keywords:    []string{},
		URL:         url,
		Platform:    models.PlatformGeneric,
	}
}
