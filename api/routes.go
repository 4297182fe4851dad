package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers every route on a new mux. Admin routes require a bearer token.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /scrape", h.ScrapeHandler)
	mux.HandleFunc("POST /scrape-url", h.ScrapeURLHandler)

	mux.HandleFunc("POST /analyze/link", h.AnalyzeLinkHandler)
	mux.HandleFunc("POST /analyze/image", h.AnalyzeImageHandler)
	mux.HandleFunc("POST /analyze/product", h.AnalyzeProductHandler)
	mux.HandleFunc("POST /export", h.ExportHandler)

	mux.HandleFunc("POST /auth/login", h.LoginHandler)
	mux.HandleFunc("POST /auth/register", h.RegisterHandler)
	mux.HandleFunc("POST /auth/forgot-password", h.ForgotPasswordHandler)

	admin := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, AuthMiddleware(handler))
	}
	admin("GET /admin/dashboard", h.DashboardHandler)
	admin("GET /admin/clients", h.ListClientsHandler)
	admin("GET /admin/clients/{id}", h.GetClientHandler)
	admin("PUT /admin/clients/{id}", h.UpdateClientHandler)
	admin("DELETE /admin/clients/{id}", h.DeleteClientHandler)
	admin("POST /admin/clients/{id}/toggle-status", h.ToggleClientStatusHandler)
	admin("POST /admin/clients/{id}/reset-password", h.ResetClientPasswordHandler)
	admin("POST /admin/clients/{id}/cancel-subscription", h.CancelSubscriptionHandler)
	admin("GET /admin/payments", h.ListPaymentsHandler)
	admin("GET /admin/payments/{id}", h.GetPaymentHandler)
	admin("PUT /admin/payments/{id}/status", h.UpdatePaymentStatusHandler)
	admin("POST /admin/payments/{id}/refund", h.RefundHandler)
	admin("GET /admin/settings", h.GetSettingsHandler)
	admin("POST /admin/settings", h.UpdateSettingsHandler)
	admin("DELETE /admin/settings/keys/{name}", h.DeleteKeyHandler)

	return mux
}
