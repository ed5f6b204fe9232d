package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/marketpulse/internal/common"
)

// ClaudeGenerator generates analysis text via the Anthropic Claude API.
// Like the Gemini provider, one client is cached per effective API key.
type ClaudeGenerator struct {
	cfg       *common.ClaudeConfig
	logger    arbor.ILogger
	timeout   time.Duration
	maxTokens int
	limiter   *rate.Limiter

	mu        sync.Mutex
	client    *anthropic.Client
	clientKey string
}

// NewClaudeGenerator creates the Claude provider
func NewClaudeGenerator(cfg *common.ClaudeConfig, logger arbor.ILogger) (*ClaudeGenerator, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid claude timeout '%s': %w", cfg.Timeout, err)
	}
	interval, err := time.ParseDuration(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid claude rate limit '%s': %w", cfg.RateLimit, err)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	logger.Info().
		Str("model", cfg.Model).
		Dur("timeout", timeout).
		Int("max_tokens", maxTokens).
		Msg("Claude analysis provider initialized")

	return &ClaudeGenerator{
		cfg:       cfg,
		logger:    logger,
		timeout:   timeout,
		maxTokens: maxTokens,
		limiter:   rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Name identifies the provider in logs
func (c *ClaudeGenerator) Name() string { return "claude" }

// Generate sends the prompt and returns the raw model reply text
func (c *ClaudeGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	client := c.clientFor(apiKey)

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(c.cfg.Temperature))
	}

	start := time.Now()
	resp, err := client.Messages.New(timeoutCtx, params)
	if err != nil {
		return "", fmt.Errorf("claude generation failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("claude response is empty or in an unexpected format")
	}

	c.logger.Debug().
		Int("response_length", text.Len()).
		Dur("duration", time.Since(start)).
		Msg("Claude generation completed")

	return text.String(), nil
}

func (c *ClaudeGenerator) clientFor(apiKey string) *anthropic.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil || c.clientKey != apiKey {
		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		c.client = &client
		c.clientKey = apiKey
		c.logger.Debug().Msg("Claude client rebuilt for new API key")
	}
	return c.client
}
