package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.News.APIKey = "config-news-key"
	cfg.Gemini.APIKey = "config-gemini-key"
	return NewService(cfg, nil)
}

func TestResolveDefaultsWithoutSession(t *testing.T) {
	svc := newTestService(t)

	creds := svc.Resolve("")
	assert.Equal(t, "config-news-key", creds.NewsAPIKey)
	assert.Equal(t, "config-gemini-key", creds.LLMKey)
}

func TestResolvePrefersClaudeKeyForClaudeProvider(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Claude.APIKey = "config-claude-key"
	cfg.LLM.DefaultProvider = common.LLMProviderClaude
	svc := NewService(cfg, nil)

	assert.Equal(t, "config-claude-key", svc.Resolve("").LLMKey)
}

func TestSessionOverridesFallBackPerKey(t *testing.T) {
	svc := newTestService(t)

	messages := svc.SetSessionKeys("sess-1", &models.UpdateKeysRequest{NewsAPIKey: "session-news-key"})
	require.Equal(t, []string{"News API key updated in session."}, messages)

	creds := svc.Resolve("sess-1")
	assert.Equal(t, "session-news-key", creds.NewsAPIKey)
	assert.Equal(t, "config-gemini-key", creds.LLMKey, "unset session key falls back to config")

	other := svc.Resolve("sess-2")
	assert.Equal(t, "config-news-key", other.NewsAPIKey, "overrides are session-scoped")
}

func TestSetSessionKeysTrimsAndIgnoresEmpty(t *testing.T) {
	svc := newTestService(t)

	messages := svc.SetSessionKeys("sess-1", &models.UpdateKeysRequest{NewsAPIKey: "  padded  ", LLMKey: "   "})
	require.Equal(t, []string{"News API key updated in session."}, messages)
	assert.Equal(t, "padded", svc.Resolve("sess-1").NewsAPIKey)

	assert.Empty(t, svc.SetSessionKeys("", &models.UpdateKeysRequest{NewsAPIKey: "x"}))
	assert.Empty(t, svc.SetSessionKeys("sess-1", nil))
}

func TestPlaceholderDetection(t *testing.T) {
	assert.True(t, IsMissingNewsKey(""))
	assert.True(t, IsMissingNewsKey(PlaceholderNewsAPIKey))
	assert.False(t, IsMissingNewsKey("real-key"))

	assert.True(t, IsMissingLLMKey(""))
	assert.True(t, IsMissingLLMKey(PlaceholderLLMKey))
	assert.False(t, IsMissingLLMKey("real-key"))
}
