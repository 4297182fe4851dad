package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/utils"
)

const (
	pageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxHTMLChars  = 50000
)

var (
	ErrIncompleteProduct   = errors.New("Informações incompletas")
	ErrBothProvidersFailed = errors.New("Ambas as APIs falharam. Por favor, preencha manualmente.")
)

// ScrapeProductURL extracts name, description, price and main image of a product page with AI.
// A rate limited or overloaded primary model hands the page over to the secondary once.
func (c *Client) ScrapeProductURL(ctx context.Context, url string) (*models.ScrapedProductData, error) {
	product, err := c.scrapeProductURL(ctx, url)
	if err != nil {
		log.Printf("[AI Scrape] Error scraping %s: %v", url, err)
		return nil, fmt.Errorf("Falha ao analisar URL: %w", err)
	}
	return product, nil
}

func (c *Client) scrapeProductURL(ctx context.Context, url string) (*models.ScrapedProductData, error) {
	html, err := c.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	log.Printf("[AI Scrape] Trying %s", c.Primary.Name())
	product, err := c.extractWithPrimary(ctx, html)
	if err == nil {
		return product, nil
	}
	if c.Secondary == nil || !ShouldSwitchProvider(err) {
		return nil, err
	}

	log.Printf("[AI Scrape] %s unavailable (%v), trying %s", c.Primary.Name(), err, c.Secondary.Name())
	utils.ProviderSwitchesTotal.Inc()

	product, err = c.extractWithSecondary(ctx, html)
	if err != nil {
		log.Printf("[AI Scrape] %s also failed: %v", c.Secondary.Name(), err)
		return nil, ErrBothProvidersFailed
	}
	return product, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", pageUserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("Não foi possível acessar a URL: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return truncateRunes(string(body), maxHTMLChars), nil
}

func (c *Client) extractWithPrimary(ctx context.Context, html string) (*models.ScrapedProductData, error) {
	text, err := c.Primary.Generate(ctx, primaryScrapePrompt(html))
	if err != nil {
		return nil, err
	}

	var reply scrapedReply
	if err := DecodeJSON(text, &reply); err != nil {
		return nil, err
	}
	return reply.complete()
}

// extractWithSecondary expects the whole reply to be a JSON object
func (c *Client) extractWithSecondary(ctx context.Context, html string) (*models.ScrapedProductData, error) {
	text, err := c.Secondary.Generate(ctx, secondaryScrapePrompt(html))
	if err != nil {
		return nil, err
	}

	var reply scrapedReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, err
	}
	return reply.complete()
}

// scrapedReply tolerates models that answer the price as a number
type scrapedReply struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       flexString `json:"price"`
	ImageURL    string     `json:"imageUrl"`
}

func (r scrapedReply) complete() (*models.ScrapedProductData, error) {
	if r.Name == "" || r.Description == "" {
		return nil, ErrIncompleteProduct
	}
	return &models.ScrapedProductData{
		Name:        r.Name,
		Description: r.Description,
		Price:       string(r.Price),
		ImageURL:    r.ImageURL,
	}, nil
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
