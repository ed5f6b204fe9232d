package interfaces

import (
	"context"

	"github.com/ternarybob/marketpulse/internal/models"
)

// AnalysisService produces a structured qualitative analysis for one entity's
// articles via the configured LLM provider.
//
// A nil Failure with a non-nil result is the success path; "no content" is a
// default-shaped success, not a failure. The returned AnalysisResult always
// satisfies the full nine-field schema after reconciliation.
type AnalysisService interface {
	Analyze(ctx context.Context, apiKey string, articles []string, entityName, contextRange, customInstructions string, rec *models.LogRecorder) (*models.AnalysisResult, *models.Failure)
}
