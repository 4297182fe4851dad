package models

// Platform identifies the marketplace family a product URL belongs to
type Platform string

const (
	PlatformMercadoLivre Platform = "mercadolivre"
	PlatformShopee       Platform = "shopee"
	PlatformAmazon       Platform = "amazon"
	PlatformGeneric      Platform = "generic"
)

// ProductData represents the scraped product details
type ProductData struct {
	Title       string   `json:"title"`
	Price       string   `json:"price,omitempty"` // Formatted, e.g. "R$ 129"; empty when not found
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Keywords    []string `json:"keywords"` // Up to 10 ranked terms
	URL         string   `json:"url"`
	Platform    Platform `json:"platform"`
}

// ScrapedProductData is the AI-extracted product used to pre-fill the product form
type ScrapedProductData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ImageFile is a downloaded or uploaded image held in memory
type ImageFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}
