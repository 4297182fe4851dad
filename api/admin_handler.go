package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/service"
	"github.com/socialboost/vision/utils"
)

var settingsDecoder = newSettingsDecoder()

func newSettingsDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type paymentStatusRequest struct {
	Status models.PaymentStatus `json:"status"`
}

type refundRequest struct {
	Amount float64 `json:"amount"`
}

// DashboardHandler returns the stats and the recent activity feed
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Dashboard API]")
	defer flushRequestLog(logger)

	dashboard, err := h.admin.Dashboard(r.Context())
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin List Clients API]")
	defer flushRequestLog(logger)

	clients, err := h.admin.ListClients(r.Context())
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Found %d clients", len(clients)))
	utils.RespondJSON(w, http.StatusOK, clients)
}

func (h *Handler) GetClientHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Get Client API]")
	defer flushRequestLog(logger)

	client, err := h.admin.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, client)
}

func (h *Handler) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Update Client API]")
	defer flushRequestLog(logger)

	var upd models.ClientUpdate
	if !decodeJSON(w, r, logger, &upd) {
		return
	}

	client, err := h.admin.UpdateClient(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Client %s updated", client.ID))
	utils.RespondJSON(w, http.StatusOK, client)
}

func (h *Handler) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Delete Client API]")
	defer flushRequestLog(logger)

	id := r.PathValue("id")
	if err := h.admin.DeleteClient(r.Context(), id); err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Client %s deleted", id))
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ToggleClientStatusHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Toggle Client API]")
	defer flushRequestLog(logger)

	client, err := h.admin.ToggleClientStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Client %s is now %s", client.ID, client.Status))
	utils.RespondJSON(w, http.StatusOK, client)
}

func (h *Handler) ResetClientPasswordHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Reset Password API]")
	defer flushRequestLog(logger)

	msg, err := h.admin.ResetClientPassword(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}

func (h *Handler) CancelSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Cancel Subscription API]")
	defer flushRequestLog(logger)

	msg, err := h.admin.CancelSubscription(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}

func (h *Handler) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin List Payments API]")
	defer flushRequestLog(logger)

	payments, err := h.admin.ListPayments(r.Context())
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, payments)
}

func (h *Handler) GetPaymentHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Get Payment API]")
	defer flushRequestLog(logger)

	payment, err := h.admin.GetPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, payment)
}

func (h *Handler) UpdatePaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Payment Status API]")
	defer flushRequestLog(logger)

	var req paymentStatusRequest
	if !decodeJSON(w, r, logger, &req) {
		return
	}

	payment, err := h.admin.UpdatePaymentStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Payment %s is now %s", payment.ID, payment.Status))
	utils.RespondJSON(w, http.StatusOK, payment)
}

// RefundHandler refunds a payment; an empty body refunds the full amount
func (h *Handler) RefundHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Refund API]")
	defer flushRequestLog(logger)

	var req refundRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, logger, &req) {
		return
	}

	msg, err := h.admin.ProcessRefund(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}

func (h *Handler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Get Settings API]")
	defer flushRequestLog(logger)

	settings, err := h.admin.GetSettings(r.Context())
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettingsHandler accepts the settings form, urlencoded or multipart
func (h *Handler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Update Settings API]")
	defer flushRequestLog(logger)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error parsing form data: %v", err))
		utils.RespondError(w, logger, "Erro ao ler o formulário", http.StatusBadRequest)
		return
	}

	var form service.SettingsForm
	if err := settingsDecoder.Decode(&form, r.PostForm); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error decoding settings form: %v", err))
		utils.RespondError(w, logger, "Erro ao ler o formulário", http.StatusBadRequest)
		return
	}

	msg, err := h.admin.UpdateSettings(r.Context(), form)
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}

func (h *Handler) DeleteKeyHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Admin Delete Key API]")
	defer flushRequestLog(logger)

	msg, err := h.admin.DeleteKey(r.Context(), r.PathValue("name"))
	if err != nil {
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}
