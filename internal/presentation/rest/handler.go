package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/phishguard/phishguard/internal/application/dto"
	"github.com/phishguard/phishguard/internal/application/usecase"
	"github.com/phishguard/phishguard/internal/domain/valueobject"
	"github.com/phishguard/phishguard/internal/observability"
)

// ReportHandler exposes the URL analysis API over HTTP.
type ReportHandler struct {
	analyzeUC *usecase.AnalyzeURL
	historyUC *usecase.ListHistory
	getUC     *usecase.GetReport
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewReportHandler creates a new report API handler. metrics may be nil.
func NewReportHandler(
	analyzeUC *usecase.AnalyzeURL,
	historyUC *usecase.ListHistory,
	getUC *usecase.GetReport,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *ReportHandler {
	return &ReportHandler{
		analyzeUC: analyzeUC,
		historyUC: historyUC,
		getUC:     getUC,
		metrics:   metrics,
		logger:    logger,
	}
}

// RegisterRoutes registers the report API endpoints on the provided ServeMux.
func (h *ReportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.Analyze)
	mux.HandleFunc("GET /api/history", h.History)
	mux.HandleFunc("GET /api/report/{id}", h.GetByID)
}

// analyzeRequest uses a pointer so an absent url key is distinguishable from
// an empty string, which is a valid input.
type analyzeRequest struct {
	URL *string `json:"url"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Analyze handles POST /api/analyze.
func (h *ReportHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Error: URL is required."})
		return
	}

	resp, err := h.analyzeUC.Execute(r.Context(), dto.AnalyzeURLRequest{URL: *req.URL})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "analyze failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	h.countAnalysis(r, resp)

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /api/history.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.historyUC.Execute(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "history listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetByID handles GET /api/report/{id}.
func (h *ReportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getUC.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrReportNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Report not found"})
			return
		}
		h.logger.ErrorContext(r.Context(), "report lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// countAnalysis records the analyses counter, labeled by recommendation tier.
func (h *ReportHandler) countAnalysis(r *http.Request, resp dto.ReportResponse) {
	if h.metrics == nil {
		return
	}
	tier := "unknown"
	if rec, err := valueobject.RecommendationFromString(resp.Recommendation); err == nil {
		tier = rec.Tier()
	}
	h.metrics.ReportsAnalyzed.Add(r.Context(), 1,
		metric.WithAttributes(attribute.String("tier", tier)),
	)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode response body", "error", err)
	}
}
