package models

// CommercialAppeal is the vision model's verdict on how well an image sells
type CommercialAppeal struct {
	Score      int      `json:"score"` // 0-100
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// ImageAnalysis is the result of inspecting a product image
type ImageAnalysis struct {
	Composition      string           `json:"composition"`
	Lighting         string           `json:"lighting"`
	Colors           string           `json:"colors"`
	Quality          string           `json:"quality"`
	CommercialAppeal CommercialAppeal `json:"commercialAppeal"`
	Improvements     []string         `json:"improvements"`
}

// ContentType tells which upload-section path produced a result
type ContentType string

const (
	ContentImage ContentType = "image"
	ContentLink  ContentType = "link"
)

// Content is a single upload-section submission: either a URL or an image
type Content struct {
	Type  ContentType
	URL   string
	Image *ImageFile
}

// AnalysisResult is the upload-section output
type AnalysisResult struct {
	Score        int         `json:"score"`
	Title        string      `json:"title"`
	Caption      string      `json:"caption"`
	Hashtags     []string    `json:"hashtags"`
	Improvements []string    `json:"improvements"`
	PreviewURL   string      `json:"previewUrl"`
	Type         ContentType `json:"type"`
}

// ProductInfo echoes the product submitted on the product form
type ProductInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SocialMediaSuggestions holds the social network copy for a product
type SocialMediaSuggestions struct {
	Titles       []string `json:"titles"`
	Captions     []string `json:"captions"`
	Hashtags     []string `json:"hashtags"`
	BestTimes    []string `json:"bestTimes"`
	Improvements []string `json:"improvements"`
}

// MarketplaceSuggestions holds the marketplace listing copy for a product
type MarketplaceSuggestions struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	Category     string   `json:"category"`
	Improvements []string `json:"improvements"`
}

// Suggestions groups both suggestion bundles
type Suggestions struct {
	SocialMedia SocialMediaSuggestions `json:"socialMedia"`
	Marketplace MarketplaceSuggestions `json:"marketplace"`
}

// ProductAnalysisResult is the product-form output
type ProductAnalysisResult struct {
	Product     ProductInfo `json:"product"`
	Suggestions Suggestions `json:"suggestions"`
	Score       int         `json:"score"`
}

// SocialContent is the titles/captions/hashtags bundle generated for an image
type SocialContent struct {
	Titles   []string `json:"titles"`
	Captions []string `json:"captions"`
	Hashtags []string `json:"hashtags"`
}

// ReportVariant selects which result shape a Report carries
type ReportVariant string

const (
	VariantLegacy      ReportVariant = "legacy"
	VariantProductForm ReportVariant = "productForm"
)

// Report is the single result type handed to rendering and export.
// Exactly one of Legacy or ProductForm is set, matching Variant.
type Report struct {
	Variant       ReportVariant          `json:"variant"`
	Legacy        *AnalysisResult        `json:"legacy,omitempty"`
	ProductForm   *ProductAnalysisResult `json:"productForm,omitempty"`
	ImageAnalysis *ImageAnalysis         `json:"imageAnalysis,omitempty"`
}

// NewLegacyReport wraps an upload-section result
func NewLegacyReport(r *AnalysisResult) Report {
	return Report{Variant: VariantLegacy, Legacy: r}
}

// NewProductFormReport wraps a product-form result and its optional image analysis
func NewProductFormReport(r *ProductAnalysisResult, ia *ImageAnalysis) Report {
	return Report{Variant: VariantProductForm, ProductForm: r, ImageAnalysis: ia}
}
