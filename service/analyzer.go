package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/socialboost/vision/config"
	"github.com/socialboost/vision/generator"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/utils"
)

// DefaultPreviewURL is shown for links whose product has no image
const DefaultPreviewURL = "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=2426&auto=format&fit=crop"

var (
	ErrMissingProductFields = errors.New("Nome e descrição do produto são obrigatórios")
	ErrMissingContent       = errors.New("Informe um link ou uma imagem para analisar")
)

// ProductScraper reads a product page; it degrades instead of failing
type ProductScraper interface {
	ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error)
}

// AIClient is the set of remote model operations the pipeline relies on
type AIClient interface {
	AnalyzeImage(ctx context.Context, img *models.ImageFile) (*models.ImageAnalysis, error)
	AnalyzeImageStrict(ctx context.Context, img *models.ImageFile) (*models.ImageAnalysis, error)
	AnalyzeProduct(ctx context.Context, name, description string) (*models.ProductAnalysisResult, error)
	GenerateSocialContent(ctx context.Context, seed *models.ProductData, ia *models.ImageAnalysis) (*models.SocialContent, error)
	ScrapeProductURL(ctx context.Context, url string) (*models.ScrapedProductData, error)
}

// PreviewStore turns an uploaded image into a URL the browser can display
type PreviewStore interface {
	PreviewURL(ctx context.Context, img *models.ImageFile) (string, error)
}

// DownloadFunc fetches a remote image
type DownloadFunc func(ctx context.Context, url string) (*models.ImageFile, error)

// Analyzer runs the scrape, vision, generation and fallback pipeline
type Analyzer struct {
	scraper    ProductScraper
	ai         AIClient
	previews   PreviewStore
	download   DownloadFunc
	generator  *generator.Generator
	basicDelay time.Duration
}

// NewAnalyzer creates an Analyzer with the default downloader, generator and fallback delay
func NewAnalyzer(scraper ProductScraper, ai AIClient, previews PreviewStore) *Analyzer {
	return &Analyzer{
		scraper:    scraper,
		ai:         ai,
		previews:   previews,
		download:   utils.DownloadImageFromURL,
		generator:  generator.New(nil),
		basicDelay: config.BasicAnalysisDelay,
	}
}

// AnalyzeContent produces the upload-section result for a link or an image. It never fails:
// every error along the way ends in one of the fallback results.
func (a *Analyzer) AnalyzeContent(ctx context.Context, content models.Content) *models.AnalysisResult {
	switch content.Type {
	case models.ContentLink:
		return a.analyzeLink(ctx, content.URL)
	default:
		return a.analyzeImage(ctx, content.Image)
	}
}

func (a *Analyzer) analyzeLink(ctx context.Context, url string) (result *models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Analyzer] Panic analyzing link %s: %v", url, r)
			utils.AnalysesTotal.WithLabelValues("link", "fallback").Inc()
			result = linkFallback()
		}
	}()

	product, err := a.scraper.ScrapeProduct(ctx, url)
	if err != nil {
		log.Printf("[Analyzer] Error analyzing link %s: %v", url, err)
		utils.AnalysesTotal.WithLabelValues("link", "fallback").Inc()
		return linkFallback()
	}

	var analysis *models.ImageAnalysis
	if len(product.Images) > 0 {
		analysis, err = a.analyzeRemoteImage(ctx, product.Images[0])
		if err != nil {
			log.Printf("[Analyzer] Error analyzing product image: %v", err)
		}
	}

	generated := a.generator.GenerateIntelligentContent(product)

	result = &models.AnalysisResult{
		Type:         models.ContentLink,
		PreviewURL:   DefaultPreviewURL,
		Score:        generated.Score,
		Title:        generated.Title,
		Caption:      generated.Caption,
		Hashtags:     generated.Hashtags,
		Improvements: generated.Improvements,
	}
	if len(product.Images) > 0 && product.Images[0] != "" {
		result.PreviewURL = product.Images[0]
	}
	if analysis != nil {
		result.Score = int(math.Round(float64(analysis.CommercialAppeal.Score+generated.Score) / 2))
		merged := append(append([]string{}, analysis.Improvements...), generated.Improvements...)
		if len(merged) > 5 {
			merged = merged[:5]
		}
		result.Improvements = merged
	}

	utils.AnalysesTotal.WithLabelValues("link", "ok").Inc()
	return result
}

func (a *Analyzer) analyzeRemoteImage(ctx context.Context, url string) (*models.ImageAnalysis, error) {
	img, err := a.download(ctx, url)
	if err != nil {
		return nil, err
	}
	return a.ai.AnalyzeImage(ctx, img)
}

func (a *Analyzer) analyzeImage(ctx context.Context, img *models.ImageFile) *models.AnalysisResult {
	if img == nil {
		log.Printf("[Analyzer] Image analysis requested without an image")
		return a.basicImageAnalysis(ctx, img)
	}

	analysis, err := a.ai.AnalyzeImage(ctx, img)
	if err != nil {
		log.Printf("[Analyzer] Vision unavailable, using basic analysis: %v", err)
		return a.basicImageAnalysis(ctx, img)
	}

	seed := &models.ProductData{Title: "Imagem para redes sociais", Keywords: []string{}}
	content, err := a.ai.GenerateSocialContent(ctx, seed, analysis)
	if err != nil {
		log.Printf("[Analyzer] Content generation failed, using basic analysis: %v", err)
		return a.basicImageAnalysis(ctx, img)
	}

	result := &models.AnalysisResult{
		Type:         models.ContentImage,
		PreviewURL:   a.previewURL(ctx, img),
		Score:        analysis.CommercialAppeal.Score,
		Title:        "✨ Conteúdo Incrível!",
		Caption:      "Veja essa postagem incrível!",
		Hashtags:     content.Hashtags,
		Improvements: analysis.Improvements,
	}
	if len(content.Titles) > 0 && content.Titles[0] != "" {
		result.Title = content.Titles[0]
	}
	if len(content.Captions) > 0 && content.Captions[0] != "" {
		result.Caption = content.Captions[0]
	}
	if len(result.Hashtags) > 10 {
		result.Hashtags = result.Hashtags[:10]
	}

	utils.AnalysesTotal.WithLabelValues("image", "ok").Inc()
	return result
}

// basicImageAnalysis waits the simulated analysis time, then returns the randomized result
func (a *Analyzer) basicImageAnalysis(ctx context.Context, img *models.ImageFile) *models.AnalysisResult {
	if a.basicDelay > 0 {
		timer := time.NewTimer(a.basicDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	result := a.generator.BasicImageAnalysis()
	if img != nil {
		result.PreviewURL = a.previewURL(ctx, img)
	}
	utils.AnalysesTotal.WithLabelValues("image", "fallback").Inc()
	return result
}

func (a *Analyzer) previewURL(ctx context.Context, img *models.ImageFile) string {
	if a.previews != nil {
		url, err := a.previews.PreviewURL(ctx, img)
		if err == nil {
			return url
		}
		log.Printf("[Analyzer] Preview upload failed, inlining image: %v", err)
	}
	return utils.DataURL(img)
}

func linkFallback() *models.AnalysisResult {
	return &models.AnalysisResult{
		Type:       models.ContentLink,
		PreviewURL: DefaultPreviewURL,
		Score:      65,
		Title:      "🔥 Produto Incrível - Você Precisa Ver!",
		Caption:    "Encontrei esse produto e preciso compartilhar! ✨\n\nQualidade surpreendente e preço justo.\n\n👉 Link na bio para comprar!\n💬 Comenta aqui o que achou!",
		Hashtags:   []string{"#produtobom", "#recomendo", "#comprasonline", "#valedinheiro", "#dicasdecompras"},
		Improvements: []string{
			"Adicione mais imagens do produto para melhor visualização",
			"Inclua depoimentos de clientes na descrição",
			"Use emojis estratégicos para destacar benefícios",
		},
	}
}

// HandleAnalyze is the product form: the text analysis decides success, while the optional
// image is analyzed alongside and dropped on failure.
func (a *Analyzer) HandleAnalyze(ctx context.Context, name, description string, img *models.ImageFile) (models.Report, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return models.Report{}, ErrMissingProductFields
	}

	var (
		wg       sync.WaitGroup
		analysis *models.ImageAnalysis
	)
	if img != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ia, err := a.ai.AnalyzeImageStrict(ctx, img)
			if err != nil {
				log.Printf("[Analyzer] Image analysis failed: %v", err)
				return
			}
			analysis = ia
		}()
	}

	result, err := a.ai.AnalyzeProduct(ctx, name, description)
	wg.Wait()
	if err != nil {
		utils.AnalysesTotal.WithLabelValues("product", "error").Inc()
		return models.Report{}, err
	}

	utils.AnalysesTotal.WithLabelValues("product", "ok").Inc()
	return models.NewProductFormReport(result, analysis), nil
}

// ScrapeURL pre-fills the product form from a product page
func (a *Analyzer) ScrapeURL(ctx context.Context, url string) (*models.ScrapedProductData, error) {
	return a.ai.ScrapeProductURL(ctx, url)
}
