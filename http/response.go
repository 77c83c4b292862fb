package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"fd-calculator/domain"
	"fd-calculator/logger"
)

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.L.Error("Error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.L.Warn("Error writing response", "error", err)
	}
}

func writeSuccess[T any](w http.ResponseWriter, message string, data T) {
	writeJSON(w, http.StatusOK, domain.APIResponse[T]{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, domain.APIResponse[any]{Success: false, Error: message})
}

// writeServiceError maps service and engine errors to status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		rangeErr      *domain.OutOfRangeError
		upstreamErr   *domain.UpstreamLookupError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &rangeErr), errors.Is(err, domain.ErrEmptyScenarioSet):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &upstreamErr):
		logger.L.Error("Upstream lookup failed", "path", r.URL.Path, "service", upstreamErr.Service, "error", err)
		writeError(w, http.StatusBadGateway, "upstream service unavailable: "+upstreamErr.Service)
	default:
		logger.L.Error("Request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
