package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/marketpulse/internal/models"
)

// SectorBatch carries the boundary-validated parameters for one sector
// analysis request. EndDate has already been parsed (malformed inputs are
// substituted with system today at the web boundary).
type SectorBatch struct {
	Sectors            []string
	EndDate            time.Time
	LookbackDays       int
	MaxArticles        int
	CustomInstructions string
}

// StockBatch carries the boundary-validated parameters for one stock
// analysis request.
type StockBatch struct {
	SectorName         string
	Stocks             []string
	EndDate            time.Time
	LookbackDays       int
	MaxArticles        int
	CustomInstructions string
}

// Orchestrator drives the per-entity fetch/score/analyze pipeline and merges
// partial failures into one EntityResult per requested entity.
//
// A returned error is always a batch-level precondition failure (validation);
// per-entity failures never surface as errors, only as per-result messages.
type Orchestrator interface {
	AnalyzeSectors(ctx context.Context, creds models.Credentials, batch SectorBatch, rec *models.LogRecorder) ([]models.EntityResult, error)
	AnalyzeStocks(ctx context.Context, creds models.Credentials, batch StockBatch, rec *models.LogRecorder) ([]models.EntityResult, error)
}
