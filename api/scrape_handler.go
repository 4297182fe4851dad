package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/socialboost/vision/utils"
)

type urlRequest struct {
	URL string `json:"url"`
}

// requestURL supports both the url query parameter and a JSON body
func requestURL(r *http.Request) string {
	productURL := r.URL.Query().Get("url")
	if productURL == "" {
		var req urlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			productURL = req.URL
		}
	}
	return strings.TrimSpace(productURL)
}

// ScrapeHandler reads a product page with the platform selectors
func (h *Handler) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Scrape API]")
	defer flushRequestLog(logger)

	productURL := requestURL(r)
	if productURL == "" {
		utils.RespondError(w, logger, "Informe o parâmetro 'url' na query ou no corpo JSON", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Scraping URL: %s", productURL))

	product, err := h.scraper.ScrapeProduct(r.Context(), productURL)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Scraping failed: %v", err))
		utils.RespondError(w, logger, "Não foi possível ler a página do produto", http.StatusGatewayTimeout)
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Scraping done, platform %s, %d images", product.Platform, len(product.Images)))
	utils.RespondJSON(w, http.StatusOK, product)
}

// ScrapeURLHandler pre-fills the product form using the AI extraction
func (h *Handler) ScrapeURLHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Scrape URL API]")
	defer flushRequestLog(logger)

	productURL := requestURL(r)
	if productURL == "" {
		utils.RespondError(w, logger, "Informe a URL do produto", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Extracting product from: %s", productURL))

	data, err := h.analyzer.ScrapeURL(r.Context(), productURL)
	if err != nil {
		utils.RespondError(w, logger, err.Error(), http.StatusBadGateway)
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Extracted product: %s", data.Name))
	utils.RespondJSON(w, http.StatusOK, data)
}
