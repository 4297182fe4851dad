package amazon

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/base"
)

// AmazonScraper handles the HTML parsing for Amazon
type AmazonScraper struct {
	*base.BaseScraper
}

func NewAmazonScraper() *AmazonScraper {
	return &AmazonScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

func (s *AmazonScraper) CanScrape(url string) bool {
	return strings.Contains(url, "amazon")
}

func (s *AmazonScraper) Platform() models.Platform {
	return models.PlatformAmazon
}

func (s *AmazonScraper) ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error) {
	doc, err := s.FetchDocument(ctx, url, func(doc *goquery.Document) bool {
		return strings.TrimSpace(doc.Find("#productTitle").Text()) != ""
	})
	if err != nil {
		return nil, err
	}
	return s.Parse(doc, url), nil
}

func (s *AmazonScraper) Parse(doc *goquery.Document, url string) *models.ProductData {
	product := &models.ProductData{URL: url, Platform: models.PlatformAmazon}

	// 1. Title
	product.Title = base.FirstNonEmpty(
		strings.TrimSpace(doc.Find("#productTitle").Text()),
		base.MetaContent(doc, `meta[property="og:title"]`),
		"Produto da Amazon",
	)

	// 2. Price, whole part only
	if whole := strings.TrimSpace(doc.Find(".a-price-whole").First().Text()); whole != "" {
		product.Price = "R$ " + whole
	}

	// 3. Description from the feature bullets block
	product.Description = base.FirstNonEmpty(
		strings.TrimSpace(doc.Find("#feature-bullets").Text()),
		base.MetaContent(doc, `meta[property="og:description"]`),
	)

	// 4. Images (thumbnails, kept as listed)
	product.Images = []string{}
	doc.Find("#altImages img").Each(func(i int, sel *goquery.Selection) {
		if src := sel.AttrOr("src", ""); src != "" {
			product.Images = append(product.Images, src)
		}
	})

	product.Keywords = base.ExtractKeywords(product.Title + " " + product.Description)
	return product
}
