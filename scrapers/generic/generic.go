package generic

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/base"
)

// GenericScraper reads the Open Graph and standard meta tags of any page
type GenericScraper struct {
	*base.BaseScraper
}

func NewGenericScraper() *GenericScraper {
	return &GenericScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

// CanScrape accepts every URL
func (s *GenericScraper) CanScrape(url string) bool {
	return true
}

func (s *GenericScraper) Platform() models.Platform {
	return models.PlatformGeneric
}

func (s *GenericScraper) ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error) {
	doc, err := s.FetchDocument(ctx, url, func(doc *goquery.Document) bool {
		return base.MetaContent(doc, `meta[property="og:title"]`) != "" ||
			strings.TrimSpace(doc.Find("title").Text()) != ""
	})
	if err != nil {
		return nil, err
	}
	return s.Parse(doc, url), nil
}

func (s *GenericScraper) Parse(doc *goquery.Document, url string) *models.ProductData {
	product := &models.ProductData{URL: url, Platform: models.PlatformGeneric}

	product.Title = base.FirstNonEmpty(
		base.MetaContent(doc, `meta[property="og:title"]`),
		strings.TrimSpace(doc.Find("title").Text()),
		"Produto",
	)
	product.Description = base.FirstNonEmpty(
		base.MetaContent(doc, `meta[property="og:description"]`),
		base.MetaContent(doc, `meta[name="description"]`),
	)

	product.Images = []string{}
	if img := base.MetaContent(doc, `meta[property="og:image"]`); img != "" {
		product.Images = append(product.Images, img)
	}

	product.Keywords = base.ExtractKeywords(product.Title + " " + product.Description)
	return product
}
