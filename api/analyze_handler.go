package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/socialboost/vision/export"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/service"
	"github.com/socialboost/vision/utils"
)

// AnalyzeLinkHandler analyzes a product link from the upload section
func (h *Handler) AnalyzeLinkHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Analyze Link API]")
	defer flushRequestLog(logger)

	productURL := requestURL(r)
	if productURL == "" {
		utils.RespondError(w, logger, service.ErrMissingContent.Error(), http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Analyzing link: %s", productURL))

	result := h.analyzer.AnalyzeContent(r.Context(), models.Content{Type: models.ContentLink, URL: productURL})

	utils.AddToLogMessage(logger, fmt.Sprintf("Score: %d", result.Score))
	utils.RespondJSON(w, http.StatusOK, result)
}

// AnalyzeImageHandler analyzes an uploaded image from the upload section
func (h *Handler) AnalyzeImageHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Analyze Image API]")
	defer flushRequestLog(logger)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error parsing form data: %v", err))
		utils.RespondError(w, logger, "Erro ao ler o formulário", http.StatusBadRequest)
		return
	}

	img, err := readImage(r, "image")
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Invalid image: %v", err))
		utils.RespondError(w, logger, errNotAnImage.Error(), http.StatusBadRequest)
		return
	}
	if img == nil {
		utils.RespondError(w, logger, service.ErrMissingContent.Error(), http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Analyzing image %s (%d bytes)", img.Name, len(img.Data)))

	result := h.analyzer.AnalyzeContent(r.Context(), models.Content{Type: models.ContentImage, Image: img})

	utils.AddToLogMessage(logger, fmt.Sprintf("Score: %d", result.Score))
	utils.RespondJSON(w, http.StatusOK, result)
}

// AnalyzeProductHandler runs the product form: name, description and an optional image
func (h *Handler) AnalyzeProductHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Analyze Product API]")
	defer flushRequestLog(logger)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error parsing form data: %v", err))
		utils.RespondError(w, logger, "Erro ao ler o formulário", http.StatusBadRequest)
		return
	}

	img, err := readImage(r, "image")
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Invalid image: %v", err))
		utils.RespondError(w, logger, errNotAnImage.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	utils.AddToLogMessage(logger, fmt.Sprintf("Analyzing product: %s (image: %t)", name, img != nil))

	report, err := h.analyzer.HandleAnalyze(r.Context(), name, r.FormValue("description"), img)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		utils.RespondError(w, logger, err.Error(), status)
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Score: %d", report.ProductForm.Score))
	utils.RespondJSON(w, http.StatusOK, report)
}

// ExportHandler renders a report as a downloadable text file
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Export API]")
	defer flushRequestLog(logger)

	var report models.Report
	if !decodeJSON(w, r, logger, &report) {
		return
	}

	text, filename, err := export.Render(report, time.Now())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, export.ErrEmptyReport) {
			status = http.StatusBadRequest
		}
		utils.RespondError(w, logger, err.Error(), status)
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Exporting %s", filename))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error writing export: %v", err))
	}
}
