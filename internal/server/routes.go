package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - batch analysis
	mux.HandleFunc("/api/sector-analysis", s.app.AnalysisHandler.SectorAnalysisHandler) // POST
	mux.HandleFunc("/api/stock-analysis", s.app.AnalysisHandler.StockAnalysisHandler)   // POST

	// API routes - session API key overrides
	mux.HandleFunc("/api/keys", s.app.KeysHandler.UpdateKeysHandler) // POST

	// API routes - UI bootstrap
	mux.HandleFunc("/api/config", s.app.ConfigHandler.GetConfig) // GET

	// API routes - service metadata
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)   // GET
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler) // GET

	// Everything else is a JSON 404
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
