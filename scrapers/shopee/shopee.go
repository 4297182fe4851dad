package shopee

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/base"
)

// ShopeeScraper handles the HTML parsing for Shopee.
// Shopee renders prices client side so only the Open Graph data is reliable.
type ShopeeScraper struct {
	*base.BaseScraper
}

func NewShopeeScraper() *ShopeeScraper {
	return &ShopeeScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

func (s *ShopeeScraper) CanScrape(url string) bool {
	return strings.Contains(url, "shopee")
}

func (s *ShopeeScraper) Platform() models.Platform {
	return models.PlatformShopee
}

func (s *ShopeeScraper) ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error) {
	doc, err := s.FetchDocument(ctx, url, func(doc *goquery.Document) bool {
		return base.MetaContent(doc, `meta[property="og:title"]`) != ""
	})
	if err != nil {
		return nil, err
	}
	return s.Parse(doc, url), nil
}

func (s *ShopeeScraper) Parse(doc *goquery.Document, url string) *models.ProductData {
	product := &models.ProductData{URL: url, Platform: models.PlatformShopee}

	product.Title = base.FirstNonEmpty(
		base.MetaContent(doc, `meta[property="og:title"]`),
		strings.TrimSpace(doc.Find("._3g6KIr").Text()),
		"Produto da Shopee",
	)
	product.Description = base.MetaContent(doc, `meta[property="og:description"]`)

	product.Images = []string{}
	if img := base.MetaContent(doc, `meta[property="og:image"]`); img != "" {
		product.Images = append(product.Images, img)
	}

	product.Keywords = base.ExtractKeywords(product.Title + " " + product.Description)
	return product
}
