package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/interfaces"
	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/orchestrator"
	"github.com/ternarybob/marketpulse/internal/services/query"
)

const (
	defaultLookbackDays      = 7
	defaultSectorMaxArticles = 5
	defaultStockMaxArticles  = 3
)

// AnalysisHandler exposes the sector and stock batch analysis endpoints.
// Requests are validated at this boundary; everything past it deals in
// parsed, defaulted parameters.
type AnalysisHandler struct {
	orchestrator interfaces.Orchestrator
	credentials  interfaces.CredentialService
	validate     *validator.Validate
	logger       arbor.ILogger

	// now is replaceable in tests
	now func() time.Time
}

func NewAnalysisHandler(orch interfaces.Orchestrator, creds interfaces.CredentialService, logger arbor.ILogger) *AnalysisHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &AnalysisHandler{
		orchestrator: orch,
		credentials:  creds,
		validate:     validator.New(),
		logger:       logger,
		now:          time.Now,
	}
}

// SectorAnalysisHandler handles POST /api/sector-analysis
func (h *AnalysisHandler) SectorAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	requestID := uuid.New().String()
	rec := models.NewLogRecorder(h.logger)

	var req models.SectorAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if messages := h.validateRequest(&req); len(messages) > 0 {
		h.writeBatch(w, http.StatusBadRequest, messages, nil, rec, requestID, true)
		return
	}

	if req.LookbackDays == 0 {
		req.LookbackDays = defaultLookbackDays
	}
	if req.MaxArticles == 0 {
		req.MaxArticles = defaultSectorMaxArticles
	}

	batch := interfaces.SectorBatch{
		Sectors:            req.SelectedSectors,
		EndDate:            h.parseEndDate(req.EndDate, rec),
		LookbackDays:       req.LookbackDays,
		MaxArticles:        req.MaxArticles,
		CustomInstructions: req.CustomInstructions,
	}

	creds := h.credentials.Resolve(SessionID(r))
	results, err := h.orchestrator.AnalyzeSectors(r.Context(), creds, batch, rec)
	if err != nil {
		h.writeBatchError(w, err, rec, requestID)
		return
	}

	h.writeBatch(w, http.StatusOK, []string{"Sector analysis complete."}, results, rec, requestID, false)
}

// StockAnalysisHandler handles POST /api/stock-analysis
func (h *AnalysisHandler) StockAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	requestID := uuid.New().String()
	rec := models.NewLogRecorder(h.logger)

	var req models.StockAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if messages := h.validateRequest(&req); len(messages) > 0 {
		h.writeBatch(w, http.StatusBadRequest, messages, nil, rec, requestID, true)
		return
	}

	if req.LookbackDays == 0 {
		req.LookbackDays = defaultLookbackDays
	}
	if req.MaxArticles == 0 {
		req.MaxArticles = defaultStockMaxArticles
	}

	batch := interfaces.StockBatch{
		SectorName:         req.SectorName,
		Stocks:             req.SelectedStocks,
		EndDate:            h.parseEndDate(req.EndDate, rec),
		LookbackDays:       req.LookbackDays,
		MaxArticles:        req.MaxArticles,
		CustomInstructions: req.CustomInstructions,
	}

	creds := h.credentials.Resolve(SessionID(r))
	results, err := h.orchestrator.AnalyzeStocks(r.Context(), creds, batch, rec)
	if err != nil {
		h.writeBatchError(w, err, rec, requestID)
		return
	}

	h.writeBatch(w, http.StatusOK, []string{fmt.Sprintf("Stock analysis for %s complete.", req.SectorName)}, results, rec, requestID, false)
}

// parseEndDate parses the request end date, substituting system today for
// absent or malformed values with a warning in the request log.
func (h *AnalysisHandler) parseEndDate(raw string, rec *models.LogRecorder) time.Time {
	today := h.now()
	if raw == "" {
		return today
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		rec.Warnf(fmt.Sprintf("Invalid end_date format, defaulting to system today: %s", today.Format("2006-01-02")))
		return today
	}
	return parsed
}

// validateRequest maps struct validation failures onto user-facing messages
func (h *AnalysisHandler) validateRequest(req interface{}) []string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{"Invalid request."}
	}

	seen := make(map[string]bool)
	var messages []string
	add := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			messages = append(messages, msg)
		}
	}

	for _, fe := range vErrs {
		switch fe.Field() {
		case "SelectedSectors":
			add("Please select at least one sector.")
		case "SectorName", "SelectedStocks":
			add("Sector name and at least one stock must be provided.")
		case "LookbackDays":
			add("lookback_days must be between 1 and 365.")
		case "MaxArticles":
			add("max_articles must be between 1 and 100.")
		default:
			add("Invalid request.")
		}
	}
	return messages
}

// writeBatchError maps orchestrator errors onto the batch envelope. All known
// failure modes are caller mistakes; anything else is a server fault.
func (h *AnalysisHandler) writeBatchError(w http.ResponseWriter, err error, rec *models.LogRecorder, requestID string) {
	var vErr *orchestrator.ValidationError
	if errors.As(err, &vErr) {
		h.writeBatch(w, http.StatusBadRequest, vErr.Messages, nil, rec, requestID, true)
		return
	}
	if errors.Is(err, query.ErrInvalidDateRange) {
		h.writeBatch(w, http.StatusBadRequest, []string{"News query date range invalid after constraints."}, nil, rec, requestID, true)
		return
	}

	h.logger.Error().Err(err).Str("request_id", requestID).Msg("Batch analysis failed")
	h.writeBatch(w, http.StatusInternalServerError, []string{"Internal error during analysis."}, nil, rec, requestID, true)
}

func (h *AnalysisHandler) writeBatch(w http.ResponseWriter, status int, messages []string, results []models.EntityResult, rec *models.LogRecorder, requestID string, failed bool) {
	if results == nil {
		results = []models.EntityResult{}
	}
	WriteJSON(w, status, models.BatchResponse{
		Failed:    failed,
		Messages:  messages,
		Results:   results,
		Logs:      rec.Entries(),
		RequestID: requestID,
	})
}
