package api

import (
	"fmt"
	"net/http"

	"github.com/socialboost/vision/service"
	"github.com/socialboost/vision/utils"
)

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Login    string `json:"login"` // login or e-mail
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the payload for forgot password
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// LoginHandler handles user login
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Login API]")
	defer flushRequestLog(logger)

	var req LoginRequest
	if !decodeJSON(w, r, logger, &req) {
		return
	}
	if req.Login == "" || req.Password == "" {
		utils.RespondError(w, logger, service.ErrInvalidCredentials.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Login failed for %s: %v", req.Login, err))
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("User %s logged in", session.User.Login))
	utils.RespondJSON(w, http.StatusOK, session)
}

// RegisterHandler handles user registration
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Register API]")
	defer flushRequestLog(logger)

	var req service.RegisterRequest
	if !decodeJSON(w, r, logger, &req) {
		return
	}

	session, err := h.auth.Register(r.Context(), req)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Registration failed for %s: %v", req.Login, err))
		utils.RespondError(w, logger, err.Error(), statusFor(err))
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("User %s registered", session.User.Login))
	utils.RespondJSON(w, http.StatusCreated, session)
}

// ForgotPasswordHandler sends the password recovery e-mail
func (h *Handler) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLog("[Forgot Password API]")
	defer flushRequestLog(logger)

	var req ForgotPasswordRequest
	if !decodeJSON(w, r, logger, &req) {
		return
	}
	if req.Email == "" {
		utils.RespondError(w, logger, "Informe o email", http.StatusBadRequest)
		return
	}

	msg, err := h.auth.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Forgot password failed: %v", err))
		utils.RespondError(w, logger, "Erro ao processar a solicitação", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Success: true, Message: msg})
}
