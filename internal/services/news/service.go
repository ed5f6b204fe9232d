// Package news fetches and normalizes articles from NewsAPI.org.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/credentials"
)

// Service is the NewsAPI.org fetch adapter. One HTTP client is cached
// process-wide and rebuilt when the effective API key changes, so session
// key overrides take effect without restart.
type Service struct {
	cfg    common.NewsConfig
	logger arbor.ILogger

	mu        sync.Mutex
	client    *http.Client
	clientKey string
}

// NewService creates the news fetch adapter
func NewService(cfg *common.Config, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		cfg:    cfg.News,
		logger: logger,
	}
}

// apiResponse mirrors the /v2/everything reply. Error replies carry
// status "error" plus code and message instead of articles.
type apiResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	Articles     []apiArticle `json:"articles"`
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Fetch queries /v2/everything for the window and returns up to maxArticles
// normalized, URL-deduplicated articles. Provider failures come back as a
// classified Failure, never a raw error. The courtesy delay runs after every
// provider call, success or failure; a missing key returns before any call
// and therefore before the delay.
func (s *Service) Fetch(ctx context.Context, apiKey, query string, window models.DateWindow, maxArticles int, rec *models.LogRecorder) ([]models.Article, *models.Failure) {
	if credentials.IsMissingNewsKey(apiKey) {
		rec.Errorf("News client not available. Check News API key.")
		return nil, models.NewFailure(models.ErrKindClientUnavailable, "News client not available. Check News API key.")
	}

	defer time.Sleep(s.cfg.CourtesyDelay)

	pageSize := maxArticles
	if pageSize > s.cfg.PageCap {
		pageSize = s.cfg.PageCap
	}

	rec.Infof(fmt.Sprintf("Fetching up to %d articles for window %s", maxArticles, window.String()))

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", window.StartDate())
	params.Set("to", window.EndDate())
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(pageSize))

	endpoint := strings.TrimRight(s.cfg.BaseURL, "/") + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, s.fail(rec, models.ErrKindTransport, "Failed to build news request.")
	}
	req.Header.Set("X-Api-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.clientFor(apiKey).Do(req)
	if err != nil {
		s.logger.Warn().Err(err).Msg("News provider request failed")
		return nil, s.fail(rec, models.ErrKindTransport, "Network error contacting news provider.")
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("News provider reply not parseable")
		return nil, s.fail(rec, models.ErrKindServiceError, "News provider returned an unreadable response.")
	}

	if body.Status != "ok" {
		return nil, s.classifyAPIError(rec, body.Code, body.Message, resp.StatusCode)
	}

	articles := s.normalize(body.Articles, maxArticles)

	s.logger.Debug().
		Int("returned", len(body.Articles)).
		Int("accepted", len(articles)).
		Int("total_results", body.TotalResults).
		Msg("News fetch complete")
	rec.Infof(fmt.Sprintf("Fetched %d usable articles (%d returned by provider)", len(articles), len(body.Articles)))

	return articles, nil
}

// clientFor returns the cached HTTP client, rebuilding it when the key changes
func (s *Service) clientFor(apiKey string) *http.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil || s.clientKey != apiKey {
		s.client = &http.Client{Timeout: s.cfg.RequestTimeout}
		s.clientKey = apiKey
		s.logger.Debug().Msg("News client rebuilt for new API key")
	}
	return s.client
}

// classifyAPIError maps a provider error reply onto the failure taxonomy.
// Raw provider detail goes to the server log only.
func (s *Service) classifyAPIError(rec *models.LogRecorder, code, message string, httpStatus int) *models.Failure {
	s.logger.Warn().
		Str("code", code).
		Str("message", message).
		Int("status", httpStatus).
		Msg("News provider returned error")

	switch {
	case code == "rateLimited" || strings.HasPrefix(code, "apiKey"):
		return s.fail(rec, models.ErrKindAuthOrQuota, "News provider rejected the API key or quota is exhausted.")
	case strings.Contains(message, "too far in the past") || strings.Contains(message, "as far back as"):
		return s.fail(rec, models.ErrKindDateRangeTooOld, "Requested date range is older than the news provider allows.")
	default:
		return s.fail(rec, models.ErrKindServiceError, "News provider error: "+models.Truncate(message, 100))
	}
}

func (s *Service) fail(rec *models.LogRecorder, kind models.ErrorKind, message string) *models.Failure {
	rec.Errorf(message)
	return models.NewFailure(kind, message)
}
