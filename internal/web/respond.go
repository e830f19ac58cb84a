package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"github.com/NangRotha/Cloths-Frontend-User/internal/api"
	"github.com/NangRotha/Cloths-Frontend-User/internal/checkout"
	"github.com/NangRotha/Cloths-Frontend-User/internal/session"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleShopError maps errors from the managers and the shop API client to
// HTTP responses. Failures always surface here; nothing is retried on the
// user's behalf. fallback is the localized message shown when the server
// provided none.
func handleShopError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.Warn().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Str("path", r.URL.Path).
		Msg("shop request failed")

	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, "validation_error", validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "Your cart is empty.")
		return
	case errors.Is(err, checkout.ErrSubmitInProgress),
		errors.Is(err, session.ErrLoginInProgress):
		respondError(w, http.StatusConflict, "in_progress", "A submission is already in progress.")
		return
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, http.StatusServiceUnavailable, "service_unavailable", "The shop is temporarily unavailable. Please try again later.")
		return
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "timeout", "The shop took too long to respond.")
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Unauthorized() {
			respondError(w, http.StatusUnauthorized, "unauthorized", "Please log in again.")
			return
		}
		message := apiErr.Message()
		if message == "" {
			message = fallback
		}
		respondError(w, apiErr.StatusCode, "shop_api_error", message)
		return
	}

	respondError(w, http.StatusBadGateway, "shop_unreachable", fallback)
}
