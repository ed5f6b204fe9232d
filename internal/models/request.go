package models

// SectorAnalysisRequest is the inbound payload for POST /api/sector-analysis
type SectorAnalysisRequest struct {
	SelectedSectors    []string `json:"selected_sectors" validate:"required,min=1,dive,min=1"`
	EndDate            string   `json:"end_date"` // YYYY-MM-DD, optional; malformed values fall back to system today
	LookbackDays       int      `json:"lookback_days" validate:"omitempty,min=1,max=365"`
	MaxArticles        int      `json:"max_articles" validate:"omitempty,min=1,max=100"`
	CustomInstructions string   `json:"custom_instructions"`
}

// StockAnalysisRequest is the inbound payload for POST /api/stock-analysis
type StockAnalysisRequest struct {
	SectorName         string   `json:"sector_name" validate:"required"`
	SelectedStocks     []string `json:"selected_stocks" validate:"required,min=1,dive,min=1"`
	EndDate            string   `json:"end_date"`
	LookbackDays       int      `json:"lookback_days" validate:"omitempty,min=1,max=365"`
	MaxArticles        int      `json:"max_articles" validate:"omitempty,min=1,max=100"`
	CustomInstructions string   `json:"custom_instructions"`
}

// UpdateKeysRequest is the inbound payload for POST /api/keys. Non-empty
// values override the process-level defaults for the caller's session.
type UpdateKeysRequest struct {
	NewsAPIKey string `json:"newsapi_key"`
	LLMKey     string `json:"llm_key"`
}

// Credentials are the resolved API keys for one request (session override
// falling back to process defaults).
type Credentials struct {
	NewsAPIKey string
	LLMKey     string
}
