package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RankQuestsRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpRankQuests); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	// Decode JSON body
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	// Log the decoded request at debug level
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	// Validate the request struct
	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Missing or blank parameters yield defaultValue.
//
// Example usage:
//
//	area := GetOptionalQueryParam(r, QueryParamArea, "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetPathParam returns the decoded chi URL parameter. If it is missing or cannot be
// decoded, it writes an error response and returns false.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	raw := chi.URLParam(r, paramName)
	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}
	value = strings.TrimSpace(value)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s path parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// GetStrategyParam parses the optional strategy query parameter. An empty value
// selects the configured default.
func GetStrategyParam(r *http.Request, w http.ResponseWriter) (pricing.Strategy, bool) {
	raw := GetOptionalQueryParam(r, QueryParamStrategy, "")
	if raw == "" {
		return "", true
	}
	s, err := pricing.ParseStrategy(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamStrategy))
		return "", false
	}
	return s, true
}

// GetEpisodeParam parses the optional episode query parameter; 0 means every episode
func GetEpisodeParam(r *http.Request, w http.ResponseWriter) (domain.Episode, bool) {
	raw := GetOptionalQueryParam(r, QueryParamEpisode, "0")
	n, err := strconv.Atoi(raw)
	if err == nil {
		ep := domain.Episode(n)
		if ep == 0 {
			return 0, true
		}
		for _, known := range domain.AllEpisodes {
			if ep == known {
				return ep, true
			}
		}
	}
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamEpisode))
	return 0, false
}

// LogRequestFields is a helper to log common request fields in a structured way.
// This provides consistency across handlers when logging request details.
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// handleJSONAction decodes and validates a request body, runs action and responds
// with the result as JSON
func handleJSONAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context, REQ) (RES, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
