package service

import (
	"context"
	"errors"
	"sync"

	"github.com/socialboost/vision/models"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

type fakeScraper struct {
	product *models.ProductData
	err     error
	panics  bool
}

func (f *fakeScraper) ScrapeProduct(_ context.Context, _ string) (*models.ProductData, error) {
	if f.panics {
		panic("selector exploded")
	}
	return f.product, f.err
}

type fakeAI struct {
	mu sync.Mutex

	analysis    *models.ImageAnalysis
	analysisErr error
	strict      *models.ImageAnalysis
	strictErr   error
	product     *models.ProductAnalysisResult
	productErr  error
	social      *models.SocialContent
	socialErr   error
	scraped     *models.ScrapedProductData
	scrapedErr  error

	seeds []*models.ProductData
}

func (f *fakeAI) AnalyzeImage(_ context.Context, _ *models.ImageFile) (*models.ImageAnalysis, error) {
	return f.analysis, f.analysisErr
}

func (f *fakeAI) AnalyzeImageStrict(_ context.Context, _ *models.ImageFile) (*models.ImageAnalysis, error) {
	return f.strict, f.strictErr
}

func (f *fakeAI) AnalyzeProduct(_ context.Context, name, description string) (*models.ProductAnalysisResult, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	r := *f.product
	r.Product = models.ProductInfo{Name: name, Description: description}
	return &r, nil
}

func (f *fakeAI) GenerateSocialContent(_ context.Context, seed *models.ProductData, _ *models.ImageAnalysis) (*models.SocialContent, error) {
	f.mu.Lock()
	f.seeds = append(f.seeds, seed)
	f.mu.Unlock()
	return f.social, f.socialErr
}

func (f *fakeAI) ScrapeProductURL(_ context.Context, _ string) (*models.ScrapedProductData, error) {
	return f.scraped, f.scrapedErr
}

type fakePreviews struct {
	url string
	err error
}

func (f fakePreviews) PreviewURL(_ context.Context, _ *models.ImageFile) (string, error) {
	return f.url, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) SendEmail(_, toEmail, _, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return m.err
}

var errBoom = errors.New("boom")
