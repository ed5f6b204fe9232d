package analysis

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
)

// Generator is one LLM provider behind a single-call text interface. The API
// key arrives per call because session overrides can change it between
// requests.
type Generator interface {
	// Name identifies the provider in logs
	Name() string
	// Generate sends the prompt and returns the raw model reply text
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// NewGenerator creates the provider selected by llm.default_provider
func NewGenerator(cfg *common.Config, logger arbor.ILogger) (Generator, error) {
	switch cfg.LLM.DefaultProvider {
	case common.LLMProviderGemini, "":
		return NewGeminiGenerator(&cfg.Gemini, logger)
	case common.LLMProviderClaude:
		return NewClaudeGenerator(&cfg.Claude, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider '%s': must be 'gemini' or 'claude'", cfg.LLM.DefaultProvider)
	}
}
