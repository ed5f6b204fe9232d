package credentials

import (
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/models"
)

// Placeholder sentinels meaning "not configured". A key equal to one of these
// is treated the same as an absent key everywhere.
const (
	PlaceholderNewsAPIKey = "YOUR_NEWSAPI_ORG_API_KEY_HERE"
	PlaceholderLLMKey     = "YOUR_LLM_API_KEY_HERE"
)

// Service is the two-tier credential resolver: per-session overrides falling
// back to process-level config defaults. Session state is in-memory only.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]sessionKeys
	defaults models.Credentials
	logger   arbor.ILogger
}

type sessionKeys struct {
	newsAPIKey string
	llmKey     string
}

// NewService creates the credential resolver with process defaults from config
func NewService(cfg *common.Config, logger arbor.ILogger) *Service {
	llmKey := cfg.Gemini.APIKey
	if cfg.LLM.DefaultProvider == common.LLMProviderClaude {
		llmKey = cfg.Claude.APIKey
	}

	return &Service{
		sessions: make(map[string]sessionKeys),
		defaults: models.Credentials{
			NewsAPIKey: cfg.News.APIKey,
			LLMKey:     llmKey,
		},
		logger: logger,
	}
}

// Resolve returns the effective credentials for a session
func (s *Service) Resolve(sessionID string) models.Credentials {
	creds := s.defaults

	if sessionID == "" {
		return creds
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[sessionID]; ok {
		if sess.newsAPIKey != "" {
			creds.NewsAPIKey = sess.newsAPIKey
		}
		if sess.llmKey != "" {
			creds.LLMKey = sess.llmKey
		}
	}
	return creds
}

// SetSessionKeys stores per-session overrides; empty values leave the
// corresponding key untouched.
func (s *Service) SetSessionKeys(sessionID string, req *models.UpdateKeysRequest) []string {
	var messages []string
	if sessionID == "" || req == nil {
		return messages
	}

	s.mu.Lock()
	sess := s.sessions[sessionID]
	if key := strings.TrimSpace(req.NewsAPIKey); key != "" {
		sess.newsAPIKey = key
		messages = append(messages, "News API key updated in session.")
	}
	if key := strings.TrimSpace(req.LLMKey); key != "" {
		sess.llmKey = key
		messages = append(messages, "LLM API key updated in session.")
	}
	s.sessions[sessionID] = sess
	s.mu.Unlock()

	if len(messages) > 0 && s.logger != nil {
		s.logger.Info().
			Str("session", sessionID).
			Int("updated", len(messages)).
			Msg("Session API keys updated")
	}
	return messages
}

// IsMissingNewsKey reports whether a news key is absent or a placeholder
func IsMissingNewsKey(key string) bool {
	return key == "" || key == PlaceholderNewsAPIKey
}

// IsMissingLLMKey reports whether an LLM key is absent or a placeholder
func IsMissingLLMKey(key string) bool {
	return key == "" || key == PlaceholderLLMKey
}
