package models

// EntityResult is the terminal per-entity record emitted by the orchestrator.
// Exactly one exists per requested entity regardless of partial failure.
type EntityResult struct {
	EntityName        string             `json:"entity_name"`
	ContextDateRange  string             `json:"context_date_range"`
	ArticleCount      int                `json:"article_count"`
	Analysis          *AnalysisResult    `json:"analysis"`
	Sentiment         SentimentAggregate `json:"sentiment"`
	ErrorMessage      string             `json:"error_message,omitempty"`
	ConstituentStocks []string           `json:"constituent_stocks,omitempty"` // sector results only, for UI dropdowns
}

// BatchResponse is the outbound payload for one analysis request
type BatchResponse struct {
	Failed    bool           `json:"failed"`
	Messages  []string       `json:"messages"`
	Results   []EntityResult `json:"results"`
	Logs      []LogEntry     `json:"logs"`
	RequestID string         `json:"request_id"`
}
