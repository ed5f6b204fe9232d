// Package orchestrator drives the per-entity fetch, score and analyze
// pipeline for one analysis request.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/interfaces"
	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/credentials"
	"github.com/ternarybob/marketpulse/internal/services/query"
)

// ValidationError is a batch-level precondition failure. The web layer maps
// it to HTTP 400 with zero results; everything else in a batch is partial
// failure carried per entity.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

// Service coordinates the keyword, news, sentiment and analysis services.
// Entities are processed strictly in request order, one at a time, so the
// news adapter's per-call throttle bounds the outbound request rate.
type Service struct {
	keywords  interfaces.KeywordService
	news      interfaces.NewsService
	sentiment interfaces.SentimentService
	analysis  interfaces.AnalysisService
	newsCfg   common.NewsConfig
	logger    arbor.ILogger

	// now is replaceable in tests
	now func() time.Time
}

// NewService creates the orchestrator
func NewService(
	cfg *common.Config,
	keywords interfaces.KeywordService,
	news interfaces.NewsService,
	sentiment interfaces.SentimentService,
	analysis interfaces.AnalysisService,
	logger arbor.ILogger,
) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		keywords:  keywords,
		news:      news,
		sentiment: sentiment,
		analysis:  analysis,
		newsCfg:   cfg.News,
		logger:    logger,
		now:       time.Now,
	}
}

// AnalyzeSectors runs the pipeline for each selected sector. A sector absent
// from the keyword table still runs, querying on its bare name.
func (s *Service) AnalyzeSectors(ctx context.Context, creds models.Credentials, batch interfaces.SectorBatch, rec *models.LogRecorder) ([]models.EntityResult, error) {
	var problems []string
	if len(batch.Sectors) == 0 {
		problems = append(problems, "Please select at least one sector.")
	}
	if err := s.validateCredentials(creds, problems, rec); err != nil {
		return nil, err
	}

	queryWindow, contextWindow, err := s.constrainWindows(batch.EndDate, batch.LookbackDays, rec)
	if err != nil {
		return nil, err
	}

	results := make([]models.EntityResult, 0, len(batch.Sectors))
	for _, sectorName := range batch.Sectors {
		rec.Infof(fmt.Sprintf("--- Processing SECTOR: %s ---", sectorName))

		keywords, ok := s.keywords.SectorKeywords(sectorName)
		if !ok {
			// Unconfigured sectors query on their bare name
			keywords = []string{sectorName}
		}

		result := s.processEntity(ctx, creds, entityJob{
			name:          sectorName,
			kind:          "sector",
			keywords:      keywords,
			queryWindow:   queryWindow,
			contextWindow: contextWindow,
			maxArticles:   batch.MaxArticles,
			instructions:  batch.CustomInstructions,
		}, rec)
		result.ConstituentStocks = s.keywords.StocksForSector(sectorName)
		results = append(results, result)
	}

	rec.Infof("--- Sector analysis finished. ---")
	return results, nil
}

// AnalyzeStocks runs the pipeline for each selected stock of one sector.
// Stocks without keyword configuration short-circuit to an error result
// before any external call.
func (s *Service) AnalyzeStocks(ctx context.Context, creds models.Credentials, batch interfaces.StockBatch, rec *models.LogRecorder) ([]models.EntityResult, error) {
	var problems []string
	if batch.SectorName == "" || len(batch.Stocks) == 0 {
		problems = append(problems, "Sector name and at least one stock must be provided.")
	}
	if err := s.validateCredentials(creds, problems, rec); err != nil {
		return nil, err
	}

	queryWindow, contextWindow, err := s.constrainWindows(batch.EndDate, batch.LookbackDays, rec)
	if err != nil {
		return nil, err
	}

	results := make([]models.EntityResult, 0, len(batch.Stocks))
	for _, stockName := range batch.Stocks {
		keywords, ok := s.keywords.StockKeywords(batch.SectorName, stockName)
		if !ok {
			rec.Warnf(fmt.Sprintf("Stock '%s' not found in configuration for sector '%s'. Skipping.", stockName, batch.SectorName))
			results = append(results, models.EntityResult{
				EntityName:       stockName,
				ContextDateRange: contextWindow.String(),
				Sentiment:        models.SentimentAggregate{Label: s.sentiment.Label(0)},
				ErrorMessage:     "Stock not configured for this sector.",
			})
			continue
		}

		rec.Infof(fmt.Sprintf("--- Processing Stock: %s (Sector: %s) ---", stockName, batch.SectorName))
		results = append(results, s.processEntity(ctx, creds, entityJob{
			name:          stockName,
			kind:          "stock",
			keywords:      keywords,
			queryWindow:   queryWindow,
			contextWindow: contextWindow,
			maxArticles:   batch.MaxArticles,
			instructions:  batch.CustomInstructions,
		}, rec))
	}

	rec.Infof(fmt.Sprintf("--- Individual stock analysis for sector '%s' finished. ---", batch.SectorName))
	return results, nil
}

func (s *Service) validateCredentials(creds models.Credentials, problems []string, rec *models.LogRecorder) error {
	if credentials.IsMissingLLMKey(creds.LLMKey) {
		problems = append(problems, "LLM API key is not configured.")
	}
	if credentials.IsMissingNewsKey(creds.NewsAPIKey) {
		problems = append(problems, "NewsAPI.org API key is not configured.")
	}
	if len(problems) > 0 {
		for _, msg := range problems {
			rec.Errorf(msg)
		}
		return &ValidationError{Messages: problems}
	}
	return nil
}

// constrainWindows computes the provider query window and the user-intent
// context window once per batch. A window that collapses after clamping is a
// batch-level failure.
func (s *Service) constrainWindows(endDate time.Time, lookbackDays int, rec *models.LogRecorder) (queryWindow, contextWindow models.DateWindow, err error) {
	today := s.now()
	rec.Infof(fmt.Sprintf("Actual system date: %s", today.Format("2006-01-02")))

	queryWindow, contextWindow, warnings, err := query.ConstrainWindow(lookbackDays, endDate, today, s.newsCfg.EarliestOffsetDays)
	for _, w := range warnings {
		rec.Warnf(w)
	}
	if err != nil {
		rec.Errorf("News query date range invalid after constraints.")
		return models.DateWindow{}, models.DateWindow{}, err
	}

	rec.Infof(fmt.Sprintf("LLM Context Range: %s", contextWindow.String()))
	rec.Infof(fmt.Sprintf("News Query Range: %s", queryWindow.String()))
	return queryWindow, contextWindow, nil
}

// entityJob is one unit of the per-entity loop
type entityJob struct {
	name          string
	kind          string // "sector" or "stock"
	keywords      []string
	queryWindow   models.DateWindow
	contextWindow models.DateWindow
	maxArticles   int
	instructions  string
}

// processEntity runs fetch, sentiment and analysis for one entity and merges
// the outcome into a single result. Later stage failures override earlier
// ones in the error message; the sentiment aggregate survives regardless.
func (s *Service) processEntity(ctx context.Context, creds models.Credentials, job entityJob, rec *models.LogRecorder) models.EntityResult {
	result := models.EntityResult{
		EntityName:       job.name,
		ContextDateRange: job.contextWindow.String(),
	}

	searchQuery, err := query.BuildQuery(job.keywords, s.keywords.MarketKeywords())
	if err != nil {
		s.logger.Warn().Err(err).Str("entity", job.name).Msg("Query build failed")
		result.ErrorMessage = fmt.Sprintf("No search keywords available for %s %s.", job.kind, job.name)
		result.Sentiment = models.SentimentAggregate{Label: s.sentiment.Label(0)}
		rec.Errorf(result.ErrorMessage)
		return result
	}

	articles, fetchFailure := s.news.Fetch(ctx, creds.NewsAPIKey, searchQuery, job.queryWindow, job.maxArticles, rec)
	if fetchFailure != nil {
		result.ErrorMessage = fetchFailure.Message
	}

	contents := make([]string, 0, len(articles))
	scores := make([]float64, 0, len(articles))
	for i := range articles {
		articles[i].VaderScore = s.sentiment.Score(articles[i].Content)
		contents = append(contents, articles[i].Content)
		scores = append(scores, articles[i].VaderScore)
	}

	avg := s.sentiment.Average(scores)
	result.Sentiment = models.SentimentAggregate{
		AverageScore: avg,
		Label:        s.sentiment.Label(avg),
	}
	result.ArticleCount = len(contents)

	if len(contents) == 0 && fetchFailure == nil {
		result.ErrorMessage = fmt.Sprintf("No processable news for %s %s.", job.kind, job.name)
		rec.Infof(result.ErrorMessage)
		return result
	}

	if len(contents) > 0 {
		analysisResult, analysisFailure := s.analysis.Analyze(ctx, creds.LLMKey, contents, job.name, job.contextWindow.String(), job.instructions, rec)
		if analysisFailure != nil {
			result.ErrorMessage = analysisFailure.Message
		} else {
			result.Analysis = analysisResult
		}
	}

	return result
}
