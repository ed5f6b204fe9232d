// Package app wires configuration, services and handlers into one unit.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/handlers"
	"github.com/ternarybob/marketpulse/internal/interfaces"
	"github.com/ternarybob/marketpulse/internal/services/analysis"
	"github.com/ternarybob/marketpulse/internal/services/credentials"
	"github.com/ternarybob/marketpulse/internal/services/keywords"
	"github.com/ternarybob/marketpulse/internal/services/news"
	"github.com/ternarybob/marketpulse/internal/services/orchestrator"
	"github.com/ternarybob/marketpulse/internal/services/sentiment"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Domain services
	KeywordService    interfaces.KeywordService
	NewsService       interfaces.NewsService
	SentimentService  interfaces.SentimentService
	AnalysisService   interfaces.AnalysisService
	CredentialService interfaces.CredentialService
	Orchestrator      interfaces.Orchestrator

	// HTTP handlers
	AnalysisHandler *handlers.AnalysisHandler
	KeysHandler     *handlers.KeysHandler
	ConfigHandler   *handlers.ConfigHandler
	APIHandler      *handlers.APIHandler
}

// New creates the application with all services wired
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	keywordService, err := keywords.NewService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyword service: %w", err)
	}

	analysisService, err := analysis.NewService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analysis service: %w", err)
	}

	newsService := news.NewService(cfg, logger)
	sentimentService := sentiment.NewService(logger)
	credentialService := credentials.NewService(cfg, logger)

	orch := orchestrator.NewService(cfg, keywordService, newsService, sentimentService, analysisService, logger)

	a := &App{
		Config:            cfg,
		Logger:            logger,
		KeywordService:    keywordService,
		NewsService:       newsService,
		SentimentService:  sentimentService,
		AnalysisService:   analysisService,
		CredentialService: credentialService,
		Orchestrator:      orch,

		AnalysisHandler: handlers.NewAnalysisHandler(orch, credentialService, logger),
		KeysHandler:     handlers.NewKeysHandler(credentialService, logger),
		ConfigHandler:   handlers.NewConfigHandler(keywordService, logger),
		APIHandler:      handlers.NewAPIHandler(),
	}

	logger.Info().
		Str("environment", cfg.Environment).
		Str("llm_provider", string(cfg.LLM.DefaultProvider)).
		Int("sectors", len(keywordService.SectorNames())).
		Msg("Application initialized")

	return a, nil
}
