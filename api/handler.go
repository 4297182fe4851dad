package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/service"
	"github.com/socialboost/vision/store"
	"github.com/socialboost/vision/utils"
)

// maxUploadSize bounds multipart forms and uploaded images
const maxUploadSize = 10 << 20

// ContentAnalyzer is the analysis pipeline behind the /analyze and /scrape-url routes
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, content models.Content) *models.AnalysisResult
	HandleAnalyze(ctx context.Context, name, description string, img *models.ImageFile) (models.Report, error)
	ScrapeURL(ctx context.Context, url string) (*models.ScrapedProductData, error)
}

// ProductScraper reads a product page with CSS selectors
type ProductScraper interface {
	ScrapeProduct(ctx context.Context, url string) (*models.ProductData, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer ContentAnalyzer
	scraper  ProductScraper
	admin    *service.AdminService
	auth     *service.AuthService
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer ContentAnalyzer, scraper ProductScraper, admin *service.AdminService, auth *service.AuthService) *Handler {
	return &Handler{analyzer: analyzer, scraper: scraper, admin: admin, auth: auth}
}

// HealthHandler returns the health status of the API
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "socialboost-vision",
	})
}

// messageResponse is the body of operations that only report a message
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newRequestLog(name string) *strings.Builder {
	var logMessageBuilder strings.Builder
	utils.AddToLogMessage(&logMessageBuilder, name)
	return &logMessageBuilder
}

func flushRequestLog(logMessageBuilder *strings.Builder) {
	fmt.Println(logMessageBuilder.String())
}

// decodeJSON reads a JSON body, answering 400 when it is malformed
func decodeJSON(w http.ResponseWriter, r *http.Request, logger *strings.Builder, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Invalid request body: %v", err))
		utils.RespondError(w, logger, "Corpo da requisição inválido", http.StatusBadRequest)
		return false
	}
	return true
}

// readImage loads the optional multipart file field into memory
func readImage(r *http.Request, field string) (*models.ImageFile, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errNotAnImage
	}
	return &models.ImageFile{Name: header.Filename, ContentType: contentType, Data: data}, nil
}

var errNotAnImage = errors.New("Envie um arquivo de imagem válido")

// statusFor maps service and store errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrClientNotFound), errors.Is(err, store.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUserExists), errors.Is(err, service.ErrAlreadyRefunded):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidPaymentStatus), errors.Is(err, service.ErrUnknownKey),
		errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrMissingProductFields), errors.Is(err, service.ErrMissingContent):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
