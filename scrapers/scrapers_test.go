package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/socialboost/vision/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want models.Platform
	}{
		{"https://produto.mercadolivre.com.br/MLB-123", models.PlatformMercadoLivre},
		{"https://articulo.mercadolibre.com.ar/MLA-1", models.PlatformMercadoLivre},
		{"https://shopee.com.br/item", models.PlatformShopee},
		{"https://www.amazon.com.br/dp/B0000", models.PlatformAmazon},
		{"https://loja.exemplo.com/p/1", models.PlatformGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
			assert.Equal(t, tt.want, GetScraper(tt.url).Platform())
		})
	}
}

func TestParse_MercadoLivre(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="OG Title">
	</head><body>
		<h1 class="ui-pdp-title"> Tênis Esportivo Corrida </h1>
		<span class="andes-money-amount__fraction">199</span>
		<span class="andes-money-amount__fraction">249</span>
		<p class="ui-pdp-description__content">Tênis leve para corrida e caminhada.</p>
		<img class="ui-pdp-image" src="https://img/1.jpg">
		<img class="ui-pdp-image" src="https://img/1.jpg">
		<img class="ui-pdp-image" data-src="https://img/2.jpg">
	</body></html>`
	url := "https://produto.mercadolivre.com.br/MLB-1"

	p := GetScraper(url).Parse(parse(t, html), url)

	assert.Equal(t, "Tênis Esportivo Corrida", p.Title)
	assert.Equal(t, "R$ 199", p.Price)
	assert.Equal(t, "Tênis leve para corrida e caminhada.", p.Description)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, p.Images)
	assert.Equal(t, "tênis", p.Keywords[0])
	assert.Equal(t, models.PlatformMercadoLivre, p.Platform)
	assert.Equal(t, url, p.URL)
}

func TestParse_MercadoLivreFallbacks(t *testing.T) {
	url := "https://produto.mercadolivre.com.br/MLB-2"

	p := GetScraper(url).Parse(parse(t, `<html><body></body></html>`), url)

	assert.Equal(t, "Produto do Mercado Livre", p.Title)
	assert.Empty(t, p.Price)
	assert.Empty(t, p.Description)
	assert.Equal(t, []string{}, p.Images)
}

func TestParse_Shopee(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Garrafa Térmica Inox">
		<meta property="og:description" content="Mantém a bebida gelada">
		<meta property="og:image" content="https://cf.shopee/img.jpg">
	</head><body><div class="_3g6KIr">Outro</div></body></html>`
	url := "https://shopee.com.br/garrafa"

	p := GetScraper(url).Parse(parse(t, html), url)

	assert.Equal(t, "Garrafa Térmica Inox", p.Title)
	assert.Empty(t, p.Price)
	assert.Equal(t, "Mantém a bebida gelada", p.Description)
	assert.Equal(t, []string{"https://cf.shopee/img.jpg"}, p.Images)
	assert.Equal(t, models.PlatformShopee, p.Platform)
}

func TestParse_ShopeeDefaultTitle(t *testing.T) {
	url := "https://shopee.com.br/x"

	p := GetScraper(url).Parse(parse(t, `<html></html>`), url)

	assert.Equal(t, "Produto da Shopee", p.Title)
}

func TestParse_AmazonKeepsDuplicateImages(t *testing.T) {
	html := `<html><body>
		<span id="productTitle"> Cafeteira Elétrica </span>
		<span class="a-price-whole">349,</span>
		<div id="altImages"><img src="a.jpg"><img src="a.jpg"></div>
	</body></html>`
	url := "https://www.amazon.com.br/dp/B01"

	p := GetScraper(url).Parse(parse(t, html), url)

	assert.Equal(t, "Cafeteira Elétrica", p.Title)
	assert.Equal(t, "R$ 349,", p.Price)
	assert.Equal(t, []string{"a.jpg", "a.jpg"}, p.Images)
	assert.Equal(t, models.PlatformAmazon, p.Platform)
}

func TestParse_Generic(t *testing.T) {
	html := `<html><head>
		<title> Loja X - Mochila </title>
		<meta name="description" content="Mochila resistente">
	</head></html>`
	url := "https://loja.exemplo.com/mochila"

	p := GetScraper(url).Parse(parse(t, html), url)

	assert.Equal(t, "Loja X - Mochila", p.Title)
	assert.Equal(t, "Mochila resistente", p.Description)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{"mochila", "loja", "resistente"}, p.Keywords)
}

func TestService_ScrapeProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><meta property="og:title" content="Relógio Digital"></head></html>`))
	}))
	defer srv.Close()

	p, err := NewService().ScrapeProduct(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Relógio Digital", p.Title)
	assert.Equal(t, models.PlatformGeneric, p.Platform)
}

func TestService_ScrapeProductDegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService()

	_, err := svc.Scrape(context.Background(), srv.URL)
	assert.Error(t, err)

	p, err := svc.ScrapeProduct(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, FailureRecord(srv.URL), p)
	assert.Equal(t, "Produto", p.Title)
	assert.Equal(t, FailureDescription, p.Description)
}

func TestService_ScrapeProductCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService().ScrapeProduct(ctx, "https://loja.exemplo.com/x")

	assert.ErrorIs(t, err, context.Canceled)
}
