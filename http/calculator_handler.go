package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fd-calculator/domain"
	"fd-calculator/logger"
	"fd-calculator/service"
)

const maxRequestBodyBytes = 1 << 20

type CalculatorHandler struct {
	service *service.FdCalculatorService
}

func NewCalculatorHandler(service *service.FdCalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// decodeJSON rejects non-POST, non-JSON and malformed requests, writing the
// error response itself. It reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.L.Debug("Error decoding request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *CalculatorHandler) CalculateStandalone(w http.ResponseWriter, r *http.Request) {
	var input domain.CalculationRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateStandalone(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Calculation completed successfully", result)
}

func (h *CalculatorHandler) CalculateWithProduct(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductCalculationRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateWithProduct(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Product-based calculation completed successfully", result)
}

func (h *CalculatorHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CompareScenarios(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Comparison completed successfully", result)
}

func (h *CalculatorHandler) RecentCalculations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.service.RecentCalculations(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "", records)
}

func (h *CalculatorHandler) EvictProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.InvalidateProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Product cache entry evicted", id)
}

func (h *CalculatorHandler) EvictCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.InvalidateCustomer(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Customer classification cache entry evicted", id)
}

func (h *CalculatorHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "FD Calculator Service is running", map[string]string{"status": "UP"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return 0, false
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
