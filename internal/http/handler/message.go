package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"slangopedia/internal/http/handler/middleware"
)

const oopsErr = "Oops! Something went wrong. Please try again later."
const unexpectedErr = "unexpected error occurred"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func userID(r *http.Request) string {
	if v := r.Context().Value(middleware.UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}
