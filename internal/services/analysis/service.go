// Package analysis turns fetched article text into a fixed-schema qualitative
// analysis via the configured LLM provider.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/credentials"
)

// Service implements the analysis contract on top of a Generator
type Service struct {
	generator Generator
	logger    arbor.ILogger
}

// NewService creates the analysis service with the configured provider
func NewService(cfg *common.Config, logger arbor.ILogger) (*Service, error) {
	if logger == nil {
		logger = common.GetLogger()
	}

	generator, err := NewGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Service{generator: generator, logger: logger}, nil
}

// NewServiceWithGenerator creates the analysis service around an explicit
// provider. Tests use this to substitute a stub.
func NewServiceWithGenerator(generator Generator, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{generator: generator, logger: logger}
}

// Analyze runs one entity's articles through the provider and reconciles the
// reply onto the nine-field schema.
//
// Empty input is a success: the result carries the documented defaults with
// summary and reason explaining that nothing was available. A missing key
// fails fast before any provider call.
func (s *Service) Analyze(ctx context.Context, apiKey string, articles []string, entityName, contextRange, customInstructions string, rec *models.LogRecorder) (*models.AnalysisResult, *models.Failure) {
	rec.Infof(fmt.Sprintf("Starting analysis with %d articles for dates %s.", len(articles), contextRange))

	if credentials.IsMissingLLMKey(apiKey) {
		msg := "LLM API Key not provided or is a placeholder."
		rec.Errorf(msg)
		return nil, models.NewFailure(models.ErrKindMissingCredential, msg)
	}

	kept, truncated := truncateArticles(articles)
	if truncated {
		rec.Warnf(fmt.Sprintf("Truncated input: %d to %d articles to fit the prompt budget.", len(articles), len(kept)))
	}

	combined := strings.Join(kept, articleSeparator)
	if strings.TrimSpace(combined) == "" {
		rec.Infof("No news content for analysis after potential truncation.")
		result := models.NewDefaultAnalysisResult()
		result.Summary = "No news content was available for analysis."
		result.SentimentReason = "No articles available or all were empty."
		return result, nil
	}

	prompt := buildPrompt(entityName, contextRange, combined, customInstructions)

	raw, err := s.generator.Generate(ctx, apiKey, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("provider", s.generator.Name()).Str("entity", entityName).Msg("Analysis generation failed")
		msg := fmt.Sprintf("Error during analysis: %s", models.Truncate(err.Error(), 100))
		rec.Errorf(msg)
		return nil, models.NewFailure(models.ErrKindServiceError, msg)
	}

	jsonText, err := extractJSON(raw)
	if err != nil {
		s.logger.Error().Err(err).Str("response_prefix", models.Truncate(raw, 200)).Msg("Could not find JSON structure in analysis response")
		msg := "Analysis provider returned invalid JSON. Please check server logs."
		rec.Errorf(msg)
		return nil, models.NewFailure(models.ErrKindMalformedResponse, msg)
	}

	result, err := reconcile(jsonText, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("response_prefix", models.Truncate(jsonText, 200)).Msg("Analysis response JSON decode failed")
		msg := "Analysis provider returned invalid JSON. Please check server logs."
		rec.Errorf(msg)
		return nil, models.NewFailure(models.ErrKindMalformedResponse, msg)
	}

	rec.Infof("Analysis successfully completed.")
	return result, nil
}
