package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/ternarybob/marketpulse/internal/common"
)

// GeminiGenerator generates analysis text via the Google Gemini API. The
// genai client is bound to an API key at construction, so one client is
// cached per effective key and rebuilt when the key changes.
type GeminiGenerator struct {
	cfg     *common.GeminiConfig
	logger  arbor.ILogger
	timeout time.Duration
	limiter *rate.Limiter

	mu        sync.Mutex
	client    *genai.Client
	clientKey string
}

// NewGeminiGenerator creates the Gemini provider
func NewGeminiGenerator(cfg *common.GeminiConfig, logger arbor.ILogger) (*GeminiGenerator, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini timeout '%s': %w", cfg.Timeout, err)
	}
	interval, err := time.ParseDuration(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini rate limit '%s': %w", cfg.RateLimit, err)
	}

	logger.Info().
		Str("model", cfg.Model).
		Dur("timeout", timeout).
		Dur("rate_limit", interval).
		Msg("Gemini analysis provider initialized")

	return &GeminiGenerator{
		cfg:     cfg,
		logger:  logger,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Name identifies the provider in logs
func (g *GeminiGenerator) Name() string { return "gemini" }

// Generate sends the prompt and returns the raw model reply text
func (g *GeminiGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	client, err := g.clientFor(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("failed to initialize genai client: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.cfg.Temperature),
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	start := time.Now()
	resp, err := client.Models.GenerateContent(timeoutCtx, g.cfg.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini response is empty or in an unexpected format")
	}

	g.logger.Debug().
		Int("response_length", text.Len()).
		Dur("duration", time.Since(start)).
		Msg("Gemini generation completed")

	return text.String(), nil
}

func (g *GeminiGenerator) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.clientKey == apiKey {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	g.client = client
	g.clientKey = apiKey
	g.logger.Debug().Msg("Gemini client rebuilt for new API key")
	return client, nil
}
