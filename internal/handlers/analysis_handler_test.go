package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/marketpulse/internal/interfaces"
	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/orchestrator"
)

type stubOrchestrator struct {
	sectorBatches []interfaces.SectorBatch
	stockBatches  []interfaces.StockBatch
	creds         []models.Credentials
	results       []models.EntityResult
	err           error
}

func (s *stubOrchestrator) AnalyzeSectors(_ context.Context, creds models.Credentials, batch interfaces.SectorBatch, _ *models.LogRecorder) ([]models.EntityResult, error) {
	s.sectorBatches = append(s.sectorBatches, batch)
	s.creds = append(s.creds, creds)
	return s.results, s.err
}

func (s *stubOrchestrator) AnalyzeStocks(_ context.Context, creds models.Credentials, batch interfaces.StockBatch, _ *models.LogRecorder) ([]models.EntityResult, error) {
	s.stockBatches = append(s.stockBatches, batch)
	s.creds = append(s.creds, creds)
	return s.results, s.err
}

type stubCredentials struct {
	resolved models.Credentials
	sessions []string
	updates  []*models.UpdateKeysRequest
}

func (s *stubCredentials) Resolve(sessionID string) models.Credentials {
	s.sessions = append(s.sessions, sessionID)
	return s.resolved
}

func (s *stubCredentials) SetSessionKeys(sessionID string, req *models.UpdateKeysRequest) []string {
	s.sessions = append(s.sessions, sessionID)
	s.updates = append(s.updates, req)
	var messages []string
	if req.NewsAPIKey != "" {
		messages = append(messages, "News API key updated in session.")
	}
	if req.LLMKey != "" {
		messages = append(messages, "LLM API key updated in session.")
	}
	return messages
}

var handlerToday = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func newSectorHandler(orch *stubOrchestrator, creds *stubCredentials) *AnalysisHandler {
	h := NewAnalysisHandler(orch, creds, nil)
	h.now = func() time.Time { return handlerToday }
	return h
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBatch(t *testing.T, w *httptest.ResponseRecorder) models.BatchResponse {
	t.Helper()
	var resp models.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSectorAnalysisSuccess(t *testing.T) {
	orch := &stubOrchestrator{results: []models.EntityResult{
		{EntityName: "Nifty IT", ArticleCount: 3},
	}}
	creds := &stubCredentials{resolved: models.Credentials{NewsAPIKey: "n", LLMKey: "l"}}
	h := newSectorHandler(orch, creds)

	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{
		"selected_sectors": ["Nifty IT"],
		"end_date": "2026-08-27",
		"lookback_days": 10,
		"max_articles": 8
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBatch(t, w)
	assert.False(t, resp.Failed)
	assert.Equal(t, []string{"Sector analysis complete."}, resp.Messages)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Nifty IT", resp.Results[0].EntityName)
	assert.NotEmpty(t, resp.RequestID)

	require.Len(t, orch.sectorBatches, 1)
	batch := orch.sectorBatches[0]
	assert.Equal(t, []string{"Nifty IT"}, batch.Sectors)
	assert.Equal(t, "2026-08-27", batch.EndDate.Format("2006-01-02"))
	assert.Equal(t, 10, batch.LookbackDays)
	assert.Equal(t, 8, batch.MaxArticles)
}

func TestSectorAnalysisDefaults(t *testing.T) {
	orch := &stubOrchestrator{}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{"selected_sectors": ["Nifty IT"]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, orch.sectorBatches, 1)
	batch := orch.sectorBatches[0]
	assert.Equal(t, 7, batch.LookbackDays)
	assert.Equal(t, 5, batch.MaxArticles)
	assert.Equal(t, "2026-08-31", batch.EndDate.Format("2006-01-02"), "absent end_date falls back to system today")
}

func TestSectorAnalysisMalformedEndDate(t *testing.T) {
	orch := &stubOrchestrator{}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{
		"selected_sectors": ["Nifty IT"],
		"end_date": "27/08/2026"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBatch(t, w)
	require.Len(t, orch.sectorBatches, 1)
	assert.Equal(t, "2026-08-31", orch.sectorBatches[0].EndDate.Format("2006-01-02"))

	found := false
	for _, entry := range resp.Logs {
		if entry.Level == "WARNING" && strings.Contains(entry.Message, "Invalid end_date format") {
			found = true
		}
	}
	assert.True(t, found, "malformed end_date must be warned about in request logs")
}

func TestSectorAnalysisValidation(t *testing.T) {
	orch := &stubOrchestrator{}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{"selected_sectors": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBatch(t, w)
	assert.True(t, resp.Failed)
	assert.Contains(t, resp.Messages, "Please select at least one sector.")
	assert.Empty(t, resp.Results)
	assert.Empty(t, orch.sectorBatches, "validation failures never reach the orchestrator")
}

func TestSectorAnalysisOrchestratorValidationError(t *testing.T) {
	orch := &stubOrchestrator{err: &orchestrator.ValidationError{
		Messages: []string{"NewsAPI.org API key is not configured."},
	}}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{"selected_sectors": ["Nifty IT"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBatch(t, w)
	assert.True(t, resp.Failed)
	assert.Equal(t, []string{"NewsAPI.org API key is not configured."}, resp.Messages)
	assert.Empty(t, resp.Results)
}

func TestSectorAnalysisInvalidJSON(t *testing.T) {
	h := newSectorHandler(&stubOrchestrator{}, &stubCredentials{})
	w := postJSON(t, h.SectorAnalysisHandler, "/api/sector-analysis", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectorAnalysisMethodNotAllowed(t *testing.T) {
	h := newSectorHandler(&stubOrchestrator{}, &stubCredentials{})
	req := httptest.NewRequest("GET", "/api/sector-analysis", nil)
	w := httptest.NewRecorder()
	h.SectorAnalysisHandler(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestStockAnalysisSuccess(t *testing.T) {
	orch := &stubOrchestrator{results: []models.EntityResult{{EntityName: "Infosys"}}}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.StockAnalysisHandler, "/api/stock-analysis", `{
		"sector_name": "Nifty IT",
		"selected_stocks": ["Infosys"]
	}`)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBatch(t, w)
	assert.Equal(t, []string{"Stock analysis for Nifty IT complete."}, resp.Messages)

	require.Len(t, orch.stockBatches, 1)
	batch := orch.stockBatches[0]
	assert.Equal(t, "Nifty IT", batch.SectorName)
	assert.Equal(t, 3, batch.MaxArticles, "stock path default differs from sector path")
}

func TestStockAnalysisValidation(t *testing.T) {
	orch := &stubOrchestrator{}
	h := newSectorHandler(orch, &stubCredentials{})

	w := postJSON(t, h.StockAnalysisHandler, "/api/stock-analysis", `{"sector_name": "", "selected_stocks": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBatch(t, w)
	assert.Equal(t, []string{"Sector name and at least one stock must be provided."}, resp.Messages)
	assert.Empty(t, orch.stockBatches)
}

func TestAnalysisUsesSessionCredentials(t *testing.T) {
	orch := &stubOrchestrator{}
	creds := &stubCredentials{resolved: models.Credentials{NewsAPIKey: "session-news", LLMKey: "session-llm"}}
	h := newSectorHandler(orch, creds)

	req := httptest.NewRequest("POST", "/api/sector-analysis", strings.NewReader(`{"selected_sectors": ["Nifty IT"]}`))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-123"})
	w := httptest.NewRecorder()
	h.SectorAnalysisHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, creds.sessions, 1)
	assert.Equal(t, "session-123", creds.sessions[0])
	require.Len(t, orch.creds, 1)
	assert.Equal(t, "session-news", orch.creds[0].NewsAPIKey)
}
