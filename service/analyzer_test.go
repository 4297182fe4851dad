package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/socialboost/vision/generator"
	"github.com/socialboost/vision/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testImage = &models.ImageFile{Name: "foto.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

func newTestAnalyzer(scraper ProductScraper, ai AIClient) *Analyzer {
	return &Analyzer{
		scraper:  scraper,
		ai:       ai,
		previews: fakePreviews{url: "https://cdn.example.com/preview.png"},
		download: func(_ context.Context, url string) (*models.ImageFile, error) {
			return &models.ImageFile{Name: "img.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}, nil
		},
		generator: generator.New(firstPicker{}),
	}
}

func sampleProduct() *models.ProductData {
	return &models.ProductData{
		Title:       "Mochila Executiva Impermeável para Notebook",
		Price:       "R$ 189",
		Description: "Mochila resistente com compartimento acolchoado para notebook até 15 polegadas e bolsos laterais.",
		Images:      []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		Keywords:    []string{"mochila", "notebook", "impermeável", "executiva"},
		URL:         "https://loja.example.com/mochila",
		Platform:    models.PlatformGeneric,
	}
}

func sampleAnalysis(score int) *models.ImageAnalysis {
	return &models.ImageAnalysis{
		Composition:      "Centralizada",
		CommercialAppeal: models.CommercialAppeal{Score: score},
		Improvements:     []string{"Fundo neutro", "Mais luz", "Outro ângulo"},
	}
}

func TestAnalyzeContent_LinkScrapeFailureFallsBack(t *testing.T) {
	a := newTestAnalyzer(&fakeScraper{err: errBoom}, &fakeAI{})

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: "https://x"})

	assert.Equal(t, models.ContentLink, result.Type)
	assert.Equal(t, 65, result.Score)
	assert.Equal(t, "🔥 Produto Incrível - Você Precisa Ver!", result.Title)
	assert.Equal(t, DefaultPreviewURL, result.PreviewURL)
	assert.Equal(t, []string{"#produtobom", "#recomendo", "#comprasonline", "#valedinheiro", "#dicasdecompras"}, result.Hashtags)
	assert.Len(t, result.Improvements, 3)
	assert.True(t, strings.HasPrefix(result.Caption, "Encontrei esse produto"))
}

func TestAnalyzeContent_LinkPanicFallsBack(t *testing.T) {
	a := newTestAnalyzer(&fakeScraper{panics: true}, &fakeAI{})

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: "https://x"})

	assert.Equal(t, 65, result.Score)
}

func TestAnalyzeContent_LinkWithVision(t *testing.T) {
	product := sampleProduct()
	ai := &fakeAI{analysis: sampleAnalysis(81)}
	a := newTestAnalyzer(&fakeScraper{product: product}, ai)
	generated := generator.New(firstPicker{}).GenerateIntelligentContent(product)

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: product.URL})

	expectedScore := (81 + generated.Score + 1) / 2
	assert.Equal(t, expectedScore, result.Score)
	assert.Equal(t, generated.Title, result.Title)
	assert.Equal(t, generated.Caption, result.Caption)
	assert.Equal(t, generated.Hashtags, result.Hashtags)
	require.LessOrEqual(t, len(result.Improvements), 5)
	assert.Equal(t, []string{"Fundo neutro", "Mais luz", "Outro ângulo"}, result.Improvements[:3])
	assert.Equal(t, "https://cdn.example.com/a.jpg", result.PreviewURL)
}

func TestAnalyzeContent_LinkVisionFailureIgnored(t *testing.T) {
	product := sampleProduct()
	a := newTestAnalyzer(&fakeScraper{product: product}, &fakeAI{analysisErr: errBoom})
	generated := generator.New(firstPicker{}).GenerateIntelligentContent(product)

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: product.URL})

	assert.Equal(t, generated.Score, result.Score)
	assert.Equal(t, generated.Improvements, result.Improvements)
}

func TestAnalyzeContent_LinkDownloadFailureIgnored(t *testing.T) {
	product := sampleProduct()
	a := newTestAnalyzer(&fakeScraper{product: product}, &fakeAI{analysis: sampleAnalysis(10)})
	a.download = func(context.Context, string) (*models.ImageFile, error) { return nil, errBoom }
	generated := generator.New(firstPicker{}).GenerateIntelligentContent(product)

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: product.URL})

	assert.Equal(t, generated.Score, result.Score)
}

func TestAnalyzeContent_LinkWithoutImagesUsesDefaultPreview(t *testing.T) {
	product := &models.ProductData{Title: "Caneca", Images: []string{}, Keywords: []string{}, Platform: models.PlatformGeneric}
	a := newTestAnalyzer(&fakeScraper{product: product}, &fakeAI{analysisErr: errors.New("must not be called")})

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentLink, URL: "https://x"})

	assert.Equal(t, DefaultPreviewURL, result.PreviewURL)
	assert.Equal(t, models.ContentLink, result.Type)
}

func TestAnalyzeContent_Image(t *testing.T) {
	tags := make([]string, 14)
	for i := range tags {
		tags[i] = "#tag"
	}
	ai := &fakeAI{
		analysis: sampleAnalysis(88),
		social:   &models.SocialContent{Titles: []string{"Título IA"}, Captions: []string{}, Hashtags: tags},
	}
	a := newTestAnalyzer(nil, ai)

	result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentImage, Image: testImage})

	assert.Equal(t, models.ContentImage, result.Type)
	assert.Equal(t, 88, result.Score)
	assert.Equal(t, "Título IA", result.Title)
	assert.Equal(t, "Veja essa postagem incrível!", result.Caption)
	assert.Len(t, result.Hashtags, 10)
	assert.Equal(t, sampleAnalysis(88).Improvements, result.Improvements)
	assert.Equal(t, "https://cdn.example.com/preview.png", result.PreviewURL)

	require.Len(t, ai.seeds, 1)
	assert.Equal(t, "Imagem para redes sociais", ai.seeds[0].Title)
	assert.Empty(t, ai.seeds[0].Description)
	assert.NotNil(t, ai.seeds[0].Keywords)
}

func TestAnalyzeContent_ImageFallsBackToBasic(t *testing.T) {
	for name, ai := range map[string]*fakeAI{
		"vision fails":     {analysisErr: errBoom},
		"generation fails": {analysis: sampleAnalysis(90), socialErr: errBoom},
	} {
		t.Run(name, func(t *testing.T) {
			a := newTestAnalyzer(nil, ai)
			a.previews = fakePreviews{err: errBoom}

			result := a.AnalyzeContent(context.Background(), models.Content{Type: models.ContentImage, Image: testImage})

			assert.Equal(t, models.ContentImage, result.Type)
			assert.GreaterOrEqual(t, result.Score, 70)
			assert.Less(t, result.Score, 92)
			assert.Len(t, result.Improvements, 3)
			assert.True(t, strings.HasPrefix(result.PreviewURL, "data:image/png;base64,"))
		})
	}
}

func TestAnalyzeContent_BasicDelayHonorsContext(t *testing.T) {
	a := newTestAnalyzer(nil, &fakeAI{analysisErr: errBoom})
	a.basicDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := a.AnalyzeContent(ctx, models.Content{Type: models.ContentImage, Image: testImage})

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, models.ContentImage, result.Type)
}

func productResult() *models.ProductAnalysisResult {
	return &models.ProductAnalysisResult{
		Score: 82,
		Suggestions: models.Suggestions{
			SocialMedia: models.SocialMediaSuggestions{Titles: []string{"T1"}},
			Marketplace: models.MarketplaceSuggestions{Category: "Geral"},
		},
	}
}

func TestHandleAnalyze_RequiresNameAndDescription(t *testing.T) {
	a := newTestAnalyzer(nil, &fakeAI{product: productResult()})

	_, err := a.HandleAnalyze(context.Background(), "  ", "desc", nil)
	assert.ErrorIs(t, err, ErrMissingProductFields)

	_, err = a.HandleAnalyze(context.Background(), "Capa", "\t", nil)
	assert.ErrorIs(t, err, ErrMissingProductFields)
}

func TestHandleAnalyze_TextOnly(t *testing.T) {
	a := newTestAnalyzer(nil, &fakeAI{product: productResult()})

	report, err := a.HandleAnalyze(context.Background(), "Capa Painel", "Capa para painel", nil)
	require.NoError(t, err)

	assert.Equal(t, models.VariantProductForm, report.Variant)
	require.NotNil(t, report.ProductForm)
	assert.Equal(t, "Capa Painel", report.ProductForm.Product.Name)
	assert.Nil(t, report.ImageAnalysis)
}

func TestHandleAnalyze_ImageFailureDoesNotFail(t *testing.T) {
	a := newTestAnalyzer(nil, &fakeAI{product: productResult(), strictErr: errBoom})

	report, err := a.HandleAnalyze(context.Background(), "Capa", "Capa para painel", testImage)
	require.NoError(t, err)
	assert.Nil(t, report.ImageAnalysis)
	assert.Equal(t, 82, report.ProductForm.Score)
}

func TestHandleAnalyze_WithImage(t *testing.T) {
	a := newTestAnalyzer(nil, &fakeAI{product: productResult(), strict: sampleAnalysis(77)})

	report, err := a.HandleAnalyze(context.Background(), "Capa", "Capa para painel", testImage)
	require.NoError(t, err)
	require.NotNil(t, report.ImageAnalysis)
	assert.Equal(t, 77, report.ImageAnalysis.CommercialAppeal.Score)
}

func TestHandleAnalyze_TextErrorSurfaces(t *testing.T) {
	apiErr := errors.New("Falha na API: quota")
	a := newTestAnalyzer(nil, &fakeAI{productErr: apiErr, strict: sampleAnalysis(77)})

	_, err := a.HandleAnalyze(context.Background(), "Capa", "Capa para painel", testImage)
	assert.ErrorIs(t, err, apiErr)
}

func TestScrapeURL(t *testing.T) {
	scraped := &models.ScrapedProductData{Name: "Capa", Description: "Capa de painel"}
	a := newTestAnalyzer(nil, &fakeAI{scraped: scraped})

	got, err := a.ScrapeURL(context.Background(), "https://x")
	require.NoError(t, err)
	assert.Equal(t, scraped, got)
}
