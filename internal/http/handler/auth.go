package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"slangopedia/internal/core"
	"slangopedia/internal/http/payload"
)

var (
	Register = "POST /api/auth/register"
	Login    = "POST /api/auth/login"
	Me       = "GET /api/auth/me"
)

type AuthHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService) *AuthHandler {
	return &AuthHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             authService,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	result, err := h.auth.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrEmailExists) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, result, http.StatusCreated, requestId)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not login",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.auth.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, result, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId := userID(r)
	if userId == "" {
		respond(h.logs, w, Response{Message: "Unauthorized"}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("no authenticated user in context", "handler", Me, "request_id", requestId)
		return
	}

	profile, err := h.auth.Profile(r.Context(), userId)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve profile",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get profile",
			"error", err,
			"handler", Me,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, profile, http.StatusOK, requestId)
}
