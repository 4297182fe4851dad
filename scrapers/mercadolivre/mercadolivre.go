package mercadolivre

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/base"
)

// MercadoLivreScraper handles the HTML parsing for Mercado Livre
type MercadoLivreScraper struct {
	*base.BaseScraper
}

func NewMercadoLivreScraper() *MercadoLivreScraper {
	return &MercadoLivreScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

func (s *MercadoLivreScraper) CanScrape(url string) bool {
	return strings.Contains(url, "mercadolivre") || strings.Contains(url, "mercadolibre")
}

func (s *MercadoLivreScraper) Platform() models.Platform {
	return models.PlatformMercadoLivre
}

func (s *MercadoLivreScraper) ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error) {
	doc, err := s.FetchDocument(ctx, url, func(doc *goquery.Document) bool {
		return strings.TrimSpace(doc.Find("h1.ui-pdp-title").Text()) != ""
	})
	if err != nil {
		return nil, err
	}
	return s.Parse(doc, url), nil
}

func (s *MercadoLivreScraper) Parse(doc *goquery.Document, url string) *models.ProductData {
	product := &models.ProductData{URL: url, Platform: models.PlatformMercadoLivre}

	product.Title = base.FirstNonEmpty(
		strings.TrimSpace(doc.Find("h1.ui-pdp-title").Text()),
		base.MetaContent(doc, `meta[property="og:title"]`),
		"Produto do Mercado Livre",
	)

	if price := strings.TrimSpace(doc.Find(".andes-money-amount__fraction").First().Text()); price != "" {
		product.Price = "R$ " + price
	}

	product.Description = base.FirstNonEmpty(
		strings.TrimSpace(doc.Find(".ui-pdp-description__content").Text()),
		base.MetaContent(doc, `meta[property="og:description"]`),
	)

	// Gallery thumbnails repeat the main picture, keep each URL once
	images := []string{}
	seen := make(map[string]bool)
	doc.Find("img.ui-pdp-image").Each(func(i int, sel *goquery.Selection) {
		src := base.FirstNonEmpty(sel.AttrOr("src", ""), sel.AttrOr("data-src", ""))
		if src != "" && !seen[src] {
			seen[src] = true
			images = append(images, src)
		}
	})
	product.Images = images

	product.Keywords = base.ExtractKeywords(product.Title + " " + product.Description)
	return product
}
